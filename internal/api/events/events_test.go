// Package events - Test bus sự kiện thay đổi dữ liệu và các helper reflection.
package events

import (
	"context"
	"sync"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEmitDataChangedCallsHandlers(t *testing.T) {
	var mu sync.Mutex
	var got []DataChangeEvent
	done := make(chan struct{})

	// Lọc theo collection để không bị gọi lại bởi emit của các test khác
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName != "orders" {
			return
		}
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
		close(done)
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "orders",
		Operation:      OpInsert,
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler không được gọi sau 2s")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, got, 1)
	assert.Equal(t, "orders", got[0].CollectionName)
	assert.Equal(t, OpInsert, got[0].Operation)
}

func TestEmitDataChangedRecoversPanic(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName == "panic_col" {
			panic("handler hỏng")
		}
	})

	// Không được làm sập tiến trình test, và giá trị panic phải được ghi log
	EmitDataChanged(context.Background(), DataChangeEvent{CollectionName: "panic_col", Operation: OpDelete})

	assert.Eventually(t, func() bool {
		for _, entry := range hook.AllEntries() {
			if entry.Data["collection"] == "panic_col" && entry.Data["panic"] == "handler hỏng" {
				return true
			}
		}
		return false
	}, 2*time.Second, 50*time.Millisecond, "log lỗi phải chứa giá trị panic của handler")
}

type fakeDoc struct {
	ID         primitive.ObjectID
	CustomerID *primitive.ObjectID
	Status     string
	Count      int
}

func TestGetObjectIDField(t *testing.T) {
	id := primitive.NewObjectID()
	cid := primitive.NewObjectID()
	doc := fakeDoc{ID: id, CustomerID: &cid}

	assert.Equal(t, id, GetObjectIDField(doc, "ID"))
	assert.Equal(t, cid, GetObjectIDField(&doc, "CustomerID"), "pointer document và pointer field đều hỗ trợ")
	assert.Equal(t, primitive.NilObjectID, GetObjectIDField(doc, "Missing"))
	assert.Equal(t, primitive.NilObjectID, GetObjectIDField(doc, "Status"), "field không phải ObjectID")
	assert.Equal(t, primitive.NilObjectID, GetObjectIDField(nil, "ID"))

	var nilPtr *fakeDoc
	assert.Equal(t, primitive.NilObjectID, GetObjectIDField(nilPtr, "ID"))
}

func TestGetStringField(t *testing.T) {
	doc := fakeDoc{Status: "confirmed"}

	assert.Equal(t, "confirmed", GetStringField(doc, "Status"))
	assert.Equal(t, "confirmed", GetStringField(&doc, "Status"))
	assert.Equal(t, "", GetStringField(doc, "Missing"))
	assert.Equal(t, "", GetStringField(doc, "Count"), "field không phải string")
	assert.Equal(t, "", GetStringField(nil, "Status"))
}
