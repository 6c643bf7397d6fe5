// Package bootstrap khởi động một MongoDB replica set đơn node trên cổng cố
// định trước khi server chạy: tìm binary mongod, giải phóng cổng, launch
// detached, khởi tạo replica set và tự chữa các lỗi phổ biến từ log.
package bootstrap

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env"
)

// Options cấu hình bootstrap, đọc từ biến môi trường.
type Options struct {
	MongodBin     string `env:"MONGOD_BIN"`                           // Đường dẫn mongod, bỏ trống = tự tìm
	DataDir       string `env:"MONGO_DATA_DIR" envDefault:"./mongo-data"` // Thư mục dữ liệu
	ReplSet       string `env:"MONGO_RS" envDefault:"rs0"`            // Tên replica set
	DBName        string `env:"MONGO_DB" envDefault:"farm_market"`    // Tên database ứng dụng
	Port          int    `env:"MONGO_PORT" envDefault:"27017"`        // Cổng cố định
	AutoRepair    bool   `env:"MONGO_AUTO_REPAIR" envDefault:"false"` // Cho phép chạy --repair khi storage hỏng
	ResetIfBroken bool   `env:"MONGO_RESET_IF_BROKEN" envDefault:"false"` // Cho phép xóa data dir khi không chữa được
	Ulimit        uint64 `env:"MONGO_ULIMIT" envDefault:"0"`          // Nâng giới hạn file descriptor (0 = giữ nguyên)
}

// LoadOptions đọc Options từ biến môi trường.
func LoadOptions() (*Options, error) {
	opts := &Options{}
	if err := env.Parse(opts); err != nil {
		return nil, fmt.Errorf("failed to parse bootstrap env: %w", err)
	}
	return opts, nil
}

// LogPath đường dẫn file log của mongod.
func (o *Options) LogPath() string {
	return filepath.Join(o.DataDir, "mongod.log")
}

// PidPath đường dẫn PID file của mongod.
func (o *Options) PidPath() string {
	return filepath.Join(o.DataDir, "mongod.pid")
}

// ConfigPath đường dẫn file cấu hình YAML được sinh ra.
func (o *Options) ConfigPath() string {
	return filepath.Join(o.DataDir, "mongod.yaml")
}

// SocketDir thư mục unix socket thuộc quyền user hiện tại, tránh lỗi
// permission trên /tmp của hệ thống.
func (o *Options) SocketDir() string {
	return filepath.Join(o.DataDir, "sock")
}

// URI connection string trực tiếp tới node local.
func (o *Options) URI() string {
	return fmt.Sprintf("mongodb://127.0.0.1:%d/?directConnection=true", o.Port)
}
