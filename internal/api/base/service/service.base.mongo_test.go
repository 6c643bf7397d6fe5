// Package basesvc - Test các phép tính phân trang.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaging(t *testing.T) {
	cases := []struct {
		name                          string
		page, limit                   int64
		wantPage, wantLimit, wantSkip int64
	}{
		{"trang đầu", 1, 10, 1, 10, 0},
		{"trang giữa", 3, 20, 3, 20, 40},
		{"page 0 quy về trang đầu", 0, 10, 1, 10, 0},
		{"page âm quy về trang đầu", -5, 10, 1, 10, 0},
		{"limit 0 quy về mặc định", 2, 0, 2, 10, 10},
		{"limit âm quy về mặc định", 1, -1, 1, 10, 0},
	}
	for _, tc := range cases {
		page, limit, skip := normalizePaging(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, page, tc.name)
		assert.Equal(t, tc.wantLimit, limit, tc.name)
		assert.Equal(t, tc.wantSkip, skip, tc.name)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), totalPages(0, 10), "không có bản ghi thì không có trang")
	assert.Equal(t, int64(1), totalPages(1, 10))
	assert.Equal(t, int64(1), totalPages(10, 10), "chia hết không sinh thêm trang")
	assert.Equal(t, int64(2), totalPages(11, 10), "dư một bản ghi vẫn cần thêm trang")
	assert.Equal(t, int64(25), totalPages(245, 10))
}
