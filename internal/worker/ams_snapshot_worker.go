// Package worker chứa các background worker của server.
package worker

import (
	"context"
	"time"

	"farm_market/internal/api/events"
	logisticssvc "farm_market/internal/api/logistics/service"
	"farm_market/internal/global"
	"farm_market/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// refreshKey định danh một bối cảnh AMS cần rebuild.
type refreshKey struct {
	centerID primitive.ObjectID
	date     string
	shift    string
}

// AmsSnapshotWorker lắng nghe thay đổi trên đơn giao nông sản và rebuild
// snapshot tồn kho bán của bối cảnh tương ứng. Các yêu cầu refresh đi qua
// channel có đệm và được gộp theo bối cảnh để tránh rebuild dồn dập.
type AmsSnapshotWorker struct {
	amsService *logisticssvc.AmsSnapshotService
	refreshCh  chan refreshKey
}

// NewAmsSnapshotWorker tạo mới AmsSnapshotWorker
func NewAmsSnapshotWorker() (*AmsSnapshotWorker, error) {
	amsService, err := logisticssvc.NewAmsSnapshotService()
	if err != nil {
		return nil, err
	}
	return &AmsSnapshotWorker{
		amsService: amsService,
		refreshCh:  make(chan refreshKey, 256),
	}, nil
}

// Register đăng ký worker vào event bus trung tâm. Gọi một lần khi init server.
func (w *AmsSnapshotWorker) Register() {
	events.OnDataChanged(w.handleDataChanged)
}

// handleDataChanged đẩy bối cảnh của đơn giao nông sản thay đổi vào hàng đợi refresh.
func (w *AmsSnapshotWorker) handleDataChanged(_ context.Context, e events.DataChangeEvent) {
	if e.CollectionName != global.ColNames.FarmerOrders {
		return
	}

	centerID := events.GetObjectIDField(e.Document, "CenterID")
	date := events.GetStringField(e.Document, "PickupDate")
	shift := events.GetStringField(e.Document, "Shift")
	if centerID.IsZero() || date == "" || shift == "" {
		return
	}

	key := refreshKey{centerID: centerID, date: date, shift: shift}
	select {
	case w.refreshCh <- key:
	default:
		log := logger.GetAppLogger()
		log.WithFields(map[string]interface{}{
			"centerId": centerID.Hex(),
			"date":     date,
			"shift":    shift,
		}).Warn("🔄 [AMS_WORKER] Hàng đợi refresh đầy, bỏ qua yêu cầu (sẽ được refresh ở thay đổi kế tiếp)")
	}
}

// Start chạy vòng xử lý refresh cho tới khi context bị hủy.
func (w *AmsSnapshotWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()
	log.Info("🔄 [AMS_WORKER] Starting AMS Snapshot Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🔄 [AMS_WORKER] AMS Snapshot Worker stopped")
			return
		case key := <-w.refreshCh:
			// Gộp các yêu cầu trùng bối cảnh đang chờ trong channel
			pending := map[refreshKey]bool{key: true}
			drain := true
			for drain {
				select {
				case next := <-w.refreshCh:
					pending[next] = true
				default:
					drain = false
				}
			}

			for k := range pending {
				w.refresh(ctx, k)
			}
		}
	}
}

// refresh rebuild snapshot một bối cảnh, recover panic để worker không dừng.
func (w *AmsSnapshotWorker) refresh(ctx context.Context, key refreshKey) {
	log := logger.GetAppLogger()
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic":    r,
				"centerId": key.centerID.Hex(),
			}).Error("🔄 [AMS_WORKER] Panic khi refresh snapshot")
		}
	}()

	refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := w.amsService.Refresh(refreshCtx, key.centerID, key.date, key.shift); err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"centerId": key.centerID.Hex(),
			"date":     key.date,
			"shift":    key.shift,
		}).Error("🔄 [AMS_WORKER] Refresh snapshot thất bại")
	}
}
