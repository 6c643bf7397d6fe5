package bootstrap

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	portPollInterval = 300 * time.Millisecond
	portOpenTimeout  = 15 * time.Second
	killGracePeriod  = 3 * time.Second
)

// readPidFile đọc PID từ PID file, trả 0 nếu không có hoặc không hợp lệ.
func readPidFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0
	}
	return pid
}

// findListeningPid hỏi OS tiến trình nào đang listen trên cổng, thử lsof
// trước rồi tới ss. Trả 0 nếu không tìm được.
func findListeningPid(port int) int {
	// lsof -ti tcp:<port> -s tcp:LISTEN
	out, err := exec.Command("lsof", "-ti", fmt.Sprintf("tcp:%d", port), "-s", "tcp:LISTEN").Output()
	if err == nil {
		if pid, convErr := strconv.Atoi(strings.TrimSpace(strings.Split(string(out), "\n")[0])); convErr == nil && pid > 0 {
			return pid
		}
	}

	// ss -ltnp sport = :<port>
	out, err = exec.Command("ss", "-ltnp", fmt.Sprintf("sport = :%d", port)).Output()
	if err != nil {
		return 0
	}
	// dòng output chứa "pid=12345"
	idx := strings.Index(string(out), "pid=")
	if idx < 0 {
		return 0
	}
	rest := string(out)[idx+4:]
	end := strings.IndexAny(rest, ",)")
	if end < 0 {
		end = len(rest)
	}
	pid, err := strconv.Atoi(rest[:end])
	if err != nil || pid <= 0 {
		return 0
	}
	return pid
}

// terminatePid gửi SIGTERM, chờ grace period rồi SIGKILL nếu chưa chết.
func terminatePid(pid int) {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return
	}
	_ = proc.Signal(syscall.SIGTERM)

	deadline := time.Now().Add(killGracePeriod)
	for time.Now().Before(deadline) {
		// Signal 0 chỉ kiểm tra tiến trình còn sống
		if err := proc.Signal(syscall.Signal(0)); err != nil {
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	_ = proc.Signal(syscall.SIGKILL)
}

// FreePort giải phóng cổng cố định: ưu tiên PID từ PID file, fallback hỏi OS.
func FreePort(opts *Options) {
	if pid := readPidFile(opts.PidPath()); pid > 0 {
		logrus.WithFields(logrus.Fields{"pid": pid, "port": opts.Port}).Info("Bootstrap: Dừng mongod cũ theo PID file")
		terminatePid(pid)
		_ = os.Remove(opts.PidPath())
	}

	if pid := findListeningPid(opts.Port); pid > 0 {
		logrus.WithFields(logrus.Fields{"pid": pid, "port": opts.Port}).Info("Bootstrap: Cổng đang bị chiếm, dừng tiến trình")
		terminatePid(pid)
	}
}

// portOpen kiểm tra cổng có kết nối được không.
func portOpen(port int) bool {
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), 500*time.Millisecond)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// WaitPortOpen chờ cổng mở với poll cố định, trả lỗi khi quá timeout.
func WaitPortOpen(ctx context.Context, port int) error {
	return waitPortOpen(ctx, port, portOpenTimeout)
}

func waitPortOpen(ctx context.Context, port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if portOpen(port) {
			return nil
		}
		time.Sleep(portPollInterval)
	}
	return fmt.Errorf("cổng %d không mở sau %s", port, timeout)
}
