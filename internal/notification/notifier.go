// Package notification lắng nghe sự kiện thay đổi dữ liệu của đơn hàng và
// gửi thông báo trạng thái cho khách qua email/webhook, kiểu fire-and-forget
// với retry giới hạn. Mọi lần gửi đều được ghi vào lịch sử thông báo.
package notification

import (
	"context"
	"fmt"
	"time"

	authsvc "farm_market/internal/api/auth/service"
	"farm_market/internal/api/events"
	notificationmodels "farm_market/internal/api/notification/models"
	notificationsvc "farm_market/internal/api/notification/service"
	"farm_market/internal/global"
	"farm_market/internal/logger"
	"farm_market/internal/notification/channels"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxAttempts = 3
	retryDelay  = 5 * time.Second
)

// statusMessages ánh xạ trạng thái đơn -> nội dung thông báo cho khách.
var statusMessages = map[string]struct {
	Subject string
	Body    string
}{
	"pending":    {"Đơn hàng đã được tạo", "Đơn hàng của bạn đã được ghi nhận và đang chờ xác nhận."},
	"confirmed":  {"Đơn hàng đã được xác nhận", "Đơn hàng của bạn đã được xác nhận và sẽ được soạn tại trung tâm."},
	"picked":     {"Đơn hàng đã soạn xong", "Đơn hàng của bạn đã được soạn xong và chờ giao."},
	"delivering": {"Đơn hàng đang được giao", "Người giao hàng đang trên đường tới bạn."},
	"delivered":  {"Đơn hàng đã giao thành công", "Đơn hàng của bạn đã được giao thành công. Cảm ơn bạn!"},
	"cancelled":  {"Đơn hàng đã bị hủy", "Đơn hàng của bạn đã bị hủy. Vui lòng liên hệ CSKH nếu cần hỗ trợ."},
}

// Notifier gửi thông báo thay đổi trạng thái đơn hàng.
type Notifier struct {
	historyService *notificationsvc.NotificationHistoryService
	userService    *authsvc.UserService
}

// NewNotifier tạo mới Notifier.
func NewNotifier() (*Notifier, error) {
	historyService, err := notificationsvc.NewNotificationHistoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification history service: %v", err)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &Notifier{
		historyService: historyService,
		userService:    userService,
	}, nil
}

// Register đăng ký Notifier vào event bus trung tâm. Gọi một lần khi init server.
func (n *Notifier) Register() {
	events.OnDataChanged(n.handleDataChanged)
}

// handleDataChanged phản ứng với thay đổi trên collection đơn hàng.
// Chạy trong goroutine riêng của event bus nên dùng context nền,
// không phụ thuộc vòng đời request.
func (n *Notifier) handleDataChanged(_ context.Context, e events.DataChangeEvent) {
	if e.CollectionName != global.ColNames.Orders {
		return
	}
	if e.Operation != events.OpInsert && e.Operation != events.OpUpdate {
		return
	}

	orderID := events.GetObjectIDField(e.Document, "ID")
	customerID := events.GetObjectIDField(e.Document, "CustomerID")
	status := events.GetStringField(e.Document, "Status")
	if orderID.IsZero() || customerID.IsZero() || status == "" {
		return
	}

	n.NotifyOrderStatus(context.Background(), orderID, customerID, status)
}

// NotifyOrderStatus gửi thông báo trạng thái đơn qua các kênh đã cấu hình.
func (n *Notifier) NotifyOrderStatus(ctx context.Context, orderID, customerID primitive.ObjectID, status string) {
	log := logger.GetAppLogger()

	msg, ok := statusMessages[status]
	if !ok {
		return
	}
	eventType := "order.status." + status
	cfg := global.ServerConfig

	// Kênh email: gửi tới địa chỉ của khách, bỏ qua khi SMTP chưa cấu hình
	if cfg.SMTPHost != "" {
		user, err := n.userService.BaseServiceMongoImpl.FindOneById(ctx, customerID)
		if err != nil {
			log.WithError(err).WithField("customerId", customerID.Hex()).Warn("🔔 [NOTIFY] Không tìm thấy khách hàng để gửi email")
		} else {
			htmlContent := fmt.Sprintf("<p>%s</p><p>Mã đơn: %s</p>", msg.Body, orderID.Hex())
			n.deliver(ctx, orderID, eventType, notificationmodels.ChannelEmail, user.Email, msg.Subject, htmlContent, func() error {
				return channels.SendEmail(ctx, cfg, user.Email, msg.Subject, htmlContent)
			})
		}
	}

	// Kênh webhook: bắn sự kiện cho hệ thống ngoài, bỏ qua khi chưa cấu hình
	if cfg.WebhookURL != "" {
		payload := map[string]interface{}{
			"eventType":  eventType,
			"orderId":    orderID.Hex(),
			"customerId": customerID.Hex(),
			"status":     status,
			"message":    msg.Body,
			"timestamp":  time.Now().Unix(),
		}
		n.deliver(ctx, orderID, eventType, notificationmodels.ChannelWebhook, cfg.WebhookURL, msg.Subject, msg.Body, func() error {
			return channels.SendWebhook(ctx, cfg.WebhookURL, payload)
		})
	}
}

// deliver gửi qua một kênh với retry cố định rồi ghi lịch sử kết quả.
func (n *Notifier) deliver(ctx context.Context, orderID primitive.ObjectID, eventType, channel, recipient, subject, content string, send func() error) {
	log := logger.GetAppLogger()

	var sendErr error
	attempts := 0
	for attempts < maxAttempts {
		attempts++
		sendErr = send()
		if sendErr == nil {
			break
		}
		if attempts < maxAttempts {
			time.Sleep(retryDelay)
		}
	}

	history := notificationmodels.NotificationHistory{
		OrderID:   orderID,
		EventType: eventType,
		Channel:   channel,
		Recipient: recipient,
		Subject:   subject,
		Content:   content,
		Attempts:  attempts,
	}
	if sendErr != nil {
		history.Status = notificationmodels.NotificationStatusFailed
		history.Error = sendErr.Error()
		log.WithError(sendErr).WithFields(map[string]interface{}{
			"orderId": orderID.Hex(),
			"channel": channel,
		}).Error("🔔 [NOTIFY] Gửi thông báo thất bại sau khi hết retry")
	} else {
		history.Status = notificationmodels.NotificationStatusSent
		now := time.Now().Unix()
		history.SentAt = &now
	}

	if _, err := n.historyService.InsertOne(ctx, history); err != nil {
		log.WithError(err).WithField("orderId", orderID.Hex()).Error("🔔 [NOTIFY] Không thể ghi lịch sử thông báo")
	}
}
