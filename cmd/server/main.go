package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"

	"farm_market/internal/global"
	"farm_market/internal/logger"
	"farm_market/internal/notification"
	"farm_market/internal/utility"
	"farm_market/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// startBackgroundWorkers đăng ký và chạy các background worker:
// AMS snapshot worker và Notifier (thông báo trạng thái đơn hàng).
func startBackgroundWorkers(ctx context.Context) {
	log := logger.GetAppLogger()

	amsWorker, err := worker.NewAmsSnapshotWorker()
	if err != nil {
		log.WithError(err).Error("Failed to create AMS snapshot worker, continuing without it")
	} else {
		amsWorker.Register()
		go utility.GoProtect(func() {
			amsWorker.Start(ctx)
		})
	}

	notifier, err := notification.NewNotifier()
	if err != nil {
		log.WithError(err).Error("Failed to create notifier, continuing without notifications")
	} else {
		notifier.Register()
		log.Info("🔔 [NOTIFY] Notifier registered")
	}
}

// listenAddress chuẩn hóa giá trị ADDRESS về dạng ":port" cho Fiber.
// Chấp nhận cả "8080" lẫn ":8080" để tránh sinh ra địa chỉ "::8080" không hợp lệ.
func listenAddress(addr string) string {
	return ":" + strings.TrimPrefix(addr, ":")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	address := listenAddress(cfg.Address)

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Helper resolve đường dẫn tương đối từ thư mục gốc dự án
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	// Khởi tạo background workers (AMS snapshot + notification)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startBackgroundWorkers(ctx)

	// Chạy Fiber server trên main thread
	main_thread()
}
