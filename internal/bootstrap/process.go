package bootstrap

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// mongodConfig là cấu trúc file cấu hình YAML sinh cho mongod.
type mongodConfig struct {
	Storage struct {
		DBPath string `yaml:"dbPath"`
	} `yaml:"storage"`
	SystemLog struct {
		Destination string `yaml:"destination"`
		Path        string `yaml:"path"`
		LogAppend   bool   `yaml:"logAppend"`
	} `yaml:"systemLog"`
	Net struct {
		Port                   int    `yaml:"port"`
		BindIP                 string `yaml:"bindIp"`
		UnixDomainSocket       *unixSocketConfig `yaml:"unixDomainSocket,omitempty"`
	} `yaml:"net"`
	Replication struct {
		ReplSetName string `yaml:"replSetName"`
	} `yaml:"replication"`
	ProcessManagement struct {
		PidFilePath string `yaml:"pidFilePath"`
	} `yaml:"processManagement"`
}

type unixSocketConfig struct {
	Enabled    bool   `yaml:"enabled"`
	PathPrefix string `yaml:"pathPrefix,omitempty"`
}

// writeMongodConfig sinh file cấu hình. disableSocket tắt hẳn unix socket —
// dùng ở lần retry khi socket trên /tmp gây lỗi permission.
func writeMongodConfig(opts *Options, disableSocket bool) error {
	cfg := mongodConfig{}
	cfg.Storage.DBPath = opts.DataDir
	cfg.SystemLog.Destination = "file"
	cfg.SystemLog.Path = opts.LogPath()
	cfg.SystemLog.LogAppend = true
	cfg.Net.Port = opts.Port
	cfg.Net.BindIP = "127.0.0.1"
	cfg.Replication.ReplSetName = opts.ReplSet
	cfg.ProcessManagement.PidFilePath = opts.PidPath()

	if disableSocket {
		cfg.Net.UnixDomainSocket = &unixSocketConfig{Enabled: false}
	} else {
		// Ép socket vào thư mục thuộc quyền user hiện tại
		if err := os.MkdirAll(opts.SocketDir(), 0o755); err != nil {
			return fmt.Errorf("failed to create socket dir: %w", err)
		}
		cfg.Net.UnixDomainSocket = &unixSocketConfig{Enabled: true, PathPrefix: opts.SocketDir()}
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal mongod config: %w", err)
	}
	if err := os.WriteFile(opts.ConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write mongod config: %w", err)
	}
	return nil
}

// applyUlimit nâng giới hạn file descriptor của tiến trình hiện tại
// (mongod thừa kế khi launch). 0 = giữ nguyên.
func applyUlimit(limit uint64) {
	if limit == 0 {
		return
	}
	rl := syscall.Rlimit{Cur: limit, Max: limit}
	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rl); err != nil {
		logrus.WithError(err).Warn("Bootstrap: Không thể nâng ulimit, tiếp tục với giới hạn hiện tại")
	}
}

// LaunchMongod khởi động mongod detached với file cấu hình được sinh ra.
// Tiến trình con thuộc session riêng, sống độc lập với mongoctl.
func LaunchMongod(binPath string, opts *Options, disableSocket bool) error {
	if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	if err := writeMongodConfig(opts, disableSocket); err != nil {
		return err
	}

	applyUlimit(opts.Ulimit)

	cmd := exec.Command(binPath, "--config", opts.ConfigPath())
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start mongod: %w", err)
	}

	// Ghi PID file phòng khi mongod chưa kịp tự ghi
	_ = os.WriteFile(opts.PidPath(), []byte(strconv.Itoa(cmd.Process.Pid)), 0o644)

	// Không chờ tiến trình con; Release để tránh zombie khi mongoctl thoát
	_ = cmd.Process.Release()

	logrus.WithFields(logrus.Fields{
		"pid":  cmd.Process.Pid,
		"port": opts.Port,
	}).Info("Bootstrap: Đã launch mongod")
	return nil
}

// RunRepair chạy một lượt mongod --repair đồng bộ (không replSet, không listen).
func RunRepair(binPath string, opts *Options) error {
	cmd := exec.Command(binPath, "--dbpath", opts.DataDir, "--repair")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("mongod --repair thất bại: %w (output: %s)", err, tailString(string(out), 500))
	}
	return nil
}
