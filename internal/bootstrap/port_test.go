// Package bootstrap - Test chờ cổng mở và tìm binary mongod.
package bootstrap

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitPortOpenTimesOut(t *testing.T) {
	// Cổng 1 không có tiến trình nào listen trong môi trường test
	start := time.Now()
	err := waitPortOpen(context.Background(), 1, 700*time.Millisecond)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "không mở sau")
	assert.Less(t, time.Since(start), 5*time.Second, "phải dừng ngay sau timeout, không chờ vô hạn")
}

func TestWaitPortOpenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := waitPortOpen(ctx, 1, 10*time.Second)
	assert.ErrorIs(t, err, context.Canceled, "context hủy phải dừng ngay, không chờ hết timeout")
}

func TestWaitPortOpenSucceeds(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	assert.NoError(t, waitPortOpen(context.Background(), port, 5*time.Second))
}

func TestResolveMongodBinOverrideMissing(t *testing.T) {
	opts := &Options{MongodBin: "/duong/dan/khong/ton/tai/mongod"}

	_, err := ResolveMongodBin(opts)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MONGOD_BIN", "lỗi phải chỉ rõ biến môi trường đặt sai")
}

func TestResolveMongodBinOverrideValid(t *testing.T) {
	// Một file chắc chắn tồn tại để giả làm binary
	opts := &Options{MongodBin: "/dev/null"}

	path, err := ResolveMongodBin(opts)
	assert.NoError(t, err)
	assert.Equal(t, "/dev/null", path)
}
