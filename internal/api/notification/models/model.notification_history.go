// Package models - model lịch sử thông báo.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationStatusSent, NotificationStatusFailed là trạng thái gửi thông báo.
const (
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// ChannelEmail, ChannelWebhook là các kênh gửi thông báo.
const (
	ChannelEmail   = "email"
	ChannelWebhook = "webhook"
)

// NotificationHistory ghi lại mỗi lần gửi thông báo thay đổi trạng thái đơn
// hàng, kể cả khi gửi thất bại sau khi hết số lần retry.
type NotificationHistory struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderID   primitive.ObjectID `json:"orderId" bson:"orderId" index:"single:1"`
	EventType string             `json:"eventType" bson:"eventType"`
	Channel   string             `json:"channel" bson:"channel"`
	Recipient string             `json:"recipient" bson:"recipient"`
	Subject   string             `json:"subject" bson:"subject"`
	Content   string             `json:"content" bson:"content"`
	Status    string             `json:"status" bson:"status" index:"single:1"`
	Error     string             `json:"error,omitempty" bson:"error,omitempty"`
	Attempts  int                `json:"attempts" bson:"attempts"`
	SentAt    *int64             `json:"sentAt,omitempty" bson:"sentAt,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
