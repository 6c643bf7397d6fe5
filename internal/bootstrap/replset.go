package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	primaryPollInterval = 500 * time.Millisecond
	primaryPollTimeout  = 20 * time.Second
)

// connectDirect mở kết nối trực tiếp tới node local, bỏ qua replica-set
// discovery (node chưa initiate thì discovery không bao giờ thành công).
func connectDirect(ctx context.Context, opts *Options) (*mongo.Client, error) {
	clientOpts := options.Client().
		ApplyURI(opts.URI()).
		SetDirect(true).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongod: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongod: %w", err)
	}
	return client, nil
}

// replSetState đọc myState từ replSetGetStatus. Trả lỗi gốc khi replica set
// chưa được initiate (code 94 NotYetInitialized).
func replSetState(ctx context.Context, client *mongo.Client) (int32, error) {
	var result bson.M
	err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "replSetGetStatus", Value: 1}}).Decode(&result)
	if err != nil {
		return 0, err
	}
	switch state := result["myState"].(type) {
	case int32:
		return state, nil
	case int64:
		return int32(state), nil
	case float64:
		return int32(state), nil
	default:
		return 0, fmt.Errorf("replSetGetStatus không có myState")
	}
}

// notYetInitialized nhận diện lỗi "chưa có cấu hình replica set".
func notYetInitialized(err error) bool {
	if err == nil {
		return false
	}
	if cmdErr, ok := err.(mongo.CommandError); ok && cmdErr.Code == 94 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no replset config") || strings.Contains(msg, "notyetinitialized")
}

// EnsureReplicaSet initiate replica set đơn node nếu cần rồi chờ node
// lên PRIMARY.
func EnsureReplicaSet(ctx context.Context, opts *Options) error {
	client, err := connectDirect(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	state, err := replSetState(ctx, client)
	if notYetInitialized(err) {
		logrus.WithField("replSet", opts.ReplSet).Info("Bootstrap: Initiate replica set")
		initiateCmd := bson.D{{Key: "replSetInitiate", Value: bson.M{
			"_id": opts.ReplSet,
			"members": []bson.M{
				{"_id": 0, "host": fmt.Sprintf("127.0.0.1:%d", opts.Port)},
			},
		}}}
		if err := client.Database("admin").RunCommand(ctx, initiateCmd).Err(); err != nil {
			// AlreadyInitialized (code 23) do race với lần chạy trước: bỏ qua
			if cmdErr, ok := err.(mongo.CommandError); !ok || cmdErr.Code != 23 {
				return fmt.Errorf("replSetInitiate thất bại: %w", err)
			}
		}
	} else if err != nil {
		return fmt.Errorf("replSetGetStatus thất bại: %w", err)
	} else if state == 1 {
		return nil // đã là PRIMARY
	}

	// Chờ node lên PRIMARY (myState == 1)
	deadline := time.Now().Add(primaryPollTimeout)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		state, err := replSetState(ctx, client)
		if err == nil && state == 1 {
			logrus.Info("Bootstrap: Replica set PRIMARY sẵn sàng")
			return nil
		}
		time.Sleep(primaryPollInterval)
	}
	return fmt.Errorf("node không lên PRIMARY sau %s", primaryPollTimeout)
}
