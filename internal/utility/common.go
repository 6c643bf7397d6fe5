package utility

import (
	"farm_market/internal/logger"
)

// GoProtect là một hàm bao bọc (wrapper) giúp bảo vệ một hàm khác khỏi bị panic.
// Nếu xảy ra panic trong hàm f(), GoProtect sẽ bắt lại và ghi log lỗi thay vì
// làm chương trình dừng hẳn. Dùng cho các goroutine nền chạy ngoài vòng đời request.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"panic": err,
			}).Error("Đã bắt lỗi panic trong goroutine nền")
		}
	}()

	f()
}
