// Package channels chứa các kênh gửi thông báo: email (SMTP) và webhook.
package channels

import (
	"context"
	"fmt"

	"farm_market/config"

	"gopkg.in/gomail.v2"
)

// SendEmail gửi thông báo qua SMTP theo cấu hình server.
// Trả lỗi khi SMTP chưa được cấu hình để caller ghi nhận vào history.
func SendEmail(ctx context.Context, cfg *config.Configuration, recipient, subject, htmlContent string) error {
	if cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP chưa được cấu hình (SMTP_HOST trống)")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.SMTPFrom)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return dialer.DialAndSend(msg)
}
