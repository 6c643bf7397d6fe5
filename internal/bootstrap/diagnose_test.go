// Package bootstrap - Test phân loại lỗi mongod từ đuôi log.
package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFailure(t *testing.T) {
	cases := []struct {
		name    string
		logTail string
		want    FailureKind
	}{
		{
			name:    "port đang bị chiếm",
			logTail: `{"s":"E","msg":"Failed to set up listener","attr":{"error":"Address already in use"}}`,
			want:    FailurePortConflict,
		},
		{
			name:    "không có quyền ghi dbPath",
			logTail: `Unable to create/open the lock file: /data/db/mongod.lock (Permission denied)`,
			want:    FailurePermission,
		},
		{
			name:    "hết file descriptor",
			logTail: `Too many open files, terminating`,
			want:    FailureUlimit,
		},
		{
			name:    "storage engine hỏng",
			logTail: `WiredTiger error (-31802) [1690000000:1][listener] file:WiredTiger.wt`,
			want:    FailureStorageBroken,
		},
		{
			name:    "dữ liệu version không tương thích",
			logTail: `Fatal assertion 28579 UnsupportedFormat: data files are incompatible with this version`,
			want:    FailureStorageBroken,
		},
		{
			name:    "log rỗng",
			logTail: "",
			want:    FailureUnknown,
		},
		{
			name:    "log bình thường không có lỗi",
			logTail: `{"s":"I","msg":"Waiting for connections","attr":{"port":27017}}`,
			want:    FailureUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyFailure(tc.logTail))
		})
	}
}

func TestTailString(t *testing.T) {
	assert.Equal(t, "abc", tailString("abc", 10), "chuỗi ngắn hơn maxBytes giữ nguyên")
	assert.Equal(t, "cde", tailString("abcde", 3), "chỉ giữ phần đuôi")
	assert.Equal(t, "", tailString("", 3))
}

func TestFailureKindString(t *testing.T) {
	assert.Equal(t, "port conflict", FailurePortConflict.String())
	assert.Equal(t, "unknown", FailureUnknown.String())
	assert.Equal(t, "unknown", FailureKind(99).String())
}
