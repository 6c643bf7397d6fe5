package bootstrap

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// commonMongodPaths các vị trí cài đặt mongod phổ biến theo platform.
func commonMongodPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/opt/homebrew/bin/mongod",
			"/usr/local/bin/mongod",
			"/opt/homebrew/opt/mongodb-community/bin/mongod",
		}
	case "windows":
		return []string{
			`C:\Program Files\MongoDB\Server\7.0\bin\mongod.exe`,
			`C:\Program Files\MongoDB\Server\6.0\bin\mongod.exe`,
		}
	default:
		return []string{
			"/usr/bin/mongod",
			"/usr/local/bin/mongod",
			"/opt/mongodb/bin/mongod",
			"/snap/bin/mongod",
		}
	}
}

// ResolveMongodBin tìm binary mongod theo thứ tự: MONGOD_BIN → PATH →
// các vị trí cài đặt phổ biến.
func ResolveMongodBin(opts *Options) (string, error) {
	if opts.MongodBin != "" {
		if _, err := os.Stat(opts.MongodBin); err != nil {
			return "", fmt.Errorf("MONGOD_BIN trỏ tới file không tồn tại: %s", opts.MongodBin)
		}
		return opts.MongodBin, nil
	}

	if path, err := exec.LookPath("mongod"); err == nil {
		return path, nil
	}

	for _, candidate := range commonMongodPaths() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("không tìm thấy mongod: cài MongoDB hoặc đặt MONGOD_BIN")
}
