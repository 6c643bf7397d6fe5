package bootstrap

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// FailureKind phân loại nguyên nhân mongod chết sớm, suy ra từ đuôi log.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailurePortConflict
	FailurePermission
	FailureUlimit
	FailureStorageBroken
)

// String mô tả ngắn gọn loại lỗi.
func (k FailureKind) String() string {
	switch k {
	case FailurePortConflict:
		return "port conflict"
	case FailurePermission:
		return "permission denied"
	case FailureUlimit:
		return "file descriptor limit"
	case FailureStorageBroken:
		return "storage engine broken"
	default:
		return "unknown"
	}
}

// ReadLogTail đọc tối đa maxBytes cuối của log mongod.
func ReadLogTail(opts *Options, maxBytes int) string {
	data, err := os.ReadFile(opts.LogPath())
	if err != nil {
		return ""
	}
	return tailString(string(data), maxBytes)
}

func tailString(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	return s[len(s)-maxBytes:]
}

// ClassifyFailure đoán nguyên nhân từ đuôi log mongod.
func ClassifyFailure(logTail string) FailureKind {
	lower := strings.ToLower(logTail)
	switch {
	case strings.Contains(lower, "address already in use"),
		strings.Contains(lower, "addrinuse"):
		return FailurePortConflict
	case strings.Contains(lower, "permission denied"),
		strings.Contains(lower, "operation not permitted"),
		strings.Contains(lower, "read-only file system"):
		return FailurePermission
	case strings.Contains(lower, "too many open files"),
		strings.Contains(lower, "file descriptor"):
		return FailureUlimit
	case strings.Contains(lower, "wiredtiger error"),
		strings.Contains(lower, "unsupported wiredtiger"),
		strings.Contains(lower, "data files are incompatible"),
		strings.Contains(lower, "dbexception in initandlisten"),
		strings.Contains(lower, "fassert"):
		return FailureStorageBroken
	default:
		return FailureUnknown
	}
}

// Remediate chữa lỗi theo phân loại, best-effort: mọi lỗi con bị nuốt và
// chỉ log warning. Trả về true nếu có hành động nào đó được thực hiện
// (đáng để retry), false nếu không còn gì để thử.
func Remediate(kind FailureKind, binPath string, opts *Options) bool {
	log := logrus.WithField("failure", kind.String())

	switch kind {
	case FailurePortConflict:
		log.Info("Bootstrap: Giải phóng lại cổng trước khi retry")
		FreePort(opts)
		return true

	case FailurePermission:
		log.Info("Bootstrap: Sửa quyền thư mục dữ liệu")
		_ = filepath.Walk(opts.DataDir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info == nil {
				return nil
			}
			mode := os.FileMode(0o644)
			if info.IsDir() {
				mode = 0o755
			}
			_ = os.Chmod(path, mode)
			return nil
		})
		// Xóa lock/socket cũ có thể thuộc user khác
		_ = os.Remove(filepath.Join(opts.DataDir, "mongod.lock"))
		return true

	case FailureUlimit:
		if opts.Ulimit == 0 {
			opts.Ulimit = 64000
		}
		log.WithField("ulimit", opts.Ulimit).Info("Bootstrap: Nâng giới hạn file descriptor rồi retry")
		return true

	case FailureStorageBroken:
		if opts.AutoRepair {
			log.Info("Bootstrap: Chạy mongod --repair (MONGO_AUTO_REPAIR)")
			if err := RunRepair(binPath, opts); err != nil {
				log.WithError(err).Warn("Bootstrap: Repair thất bại")
			} else {
				return true
			}
		}
		if opts.ResetIfBroken {
			log.Warn("Bootstrap: Xóa toàn bộ thư mục dữ liệu (MONGO_RESET_IF_BROKEN)")
			if err := os.RemoveAll(opts.DataDir); err != nil {
				log.WithError(err).Warn("Bootstrap: Không thể xóa thư mục dữ liệu")
				return false
			}
			return true
		}
		log.Warn("Bootstrap: Storage hỏng nhưng MONGO_AUTO_REPAIR/MONGO_RESET_IF_BROKEN đều tắt")
		return false

	default:
		// Xóa lock file cũ rồi thử lại một lần
		_ = os.Remove(filepath.Join(opts.DataDir, "mongod.lock"))
		return true
	}
}
