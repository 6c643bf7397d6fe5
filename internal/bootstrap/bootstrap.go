package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	maxAttempts    = 3
	attemptBackoff = 3 * time.Second
	logTailBytes   = 4096
)

// Up đưa MongoDB replica set đơn node lên trạng thái PRIMARY trên cổng cố
// định. Mỗi attempt: giải phóng cổng → launch → chờ cổng mở → initiate +
// chờ PRIMARY. Khi attempt thất bại, phân loại lỗi từ đuôi log và chữa
// best-effort trước khi retry với backoff cố định.
func Up(ctx context.Context, opts *Options) error {
	binPath, err := ResolveMongodBin(opts)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"mongod":  binPath,
		"dataDir": opts.DataDir,
		"replSet": opts.ReplSet,
		"port":    opts.Port,
	}).Info("Bootstrap: Khởi động MongoDB replica set")

	// Lần retry thứ hai trở đi tắt unix socket — nguồn lỗi permission phổ biến
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		disableSocket := attempt > 1

		lastErr = runAttempt(ctx, binPath, opts, disableSocket)
		if lastErr == nil {
			return nil
		}

		logTail := ReadLogTail(opts, logTailBytes)
		kind := ClassifyFailure(logTail)
		logrus.WithError(lastErr).WithFields(logrus.Fields{
			"attempt": attempt,
			"failure": kind.String(),
		}).Warn("Bootstrap: Attempt thất bại")

		if attempt == maxAttempts {
			break
		}
		if !Remediate(kind, binPath, opts) {
			break
		}
		time.Sleep(attemptBackoff)
	}

	// In đuôi log để chẩn đoán rồi trả lỗi cuối
	if logTail := ReadLogTail(opts, logTailBytes); logTail != "" {
		fmt.Printf("---- mongod log tail ----\n%s\n-------------------------\n", logTail)
	}
	return fmt.Errorf("bootstrap thất bại sau %d attempts: %w", maxAttempts, lastErr)
}

// runAttempt thực hiện một lượt khởi động đầy đủ.
func runAttempt(ctx context.Context, binPath string, opts *Options, disableSocket bool) error {
	FreePort(opts)

	if err := LaunchMongod(binPath, opts, disableSocket); err != nil {
		return err
	}
	if err := WaitPortOpen(ctx, opts.Port); err != nil {
		return err
	}
	return EnsureReplicaSet(ctx, opts)
}
