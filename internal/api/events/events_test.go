// Package events - Test phát và nhận event thay đổi dữ liệu.
package events

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEmitDataChanged_HandlerNhanDuocEvent(t *testing.T) {
	received := make(chan DataChangeEvent, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName == "test_collection_nhan" {
			received <- e
		}
	})

	docID := primitive.NewObjectID()
	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "test_collection_nhan",
		Operation:      OpUpdate,
		DocumentID:     docID,
	})

	select {
	case e := <-received:
		if e.Operation != OpUpdate {
			t.Errorf("Operation sai: got %q, want %q", e.Operation, OpUpdate)
		}
		if e.DocumentID != docID {
			t.Errorf("DocumentID sai: got %v, want %v", e.DocumentID, docID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Handler không nhận được event sau 2 giây")
	}
}

func TestEmitDataChanged_HandlerPanicKhongLanSangHandlerKhac(t *testing.T) {
	received := make(chan struct{}, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName == "test_collection_panic" {
			panic("handler hỏng")
		}
	})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName == "test_collection_panic" {
			received <- struct{}{}
		}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "test_collection_panic",
		Operation:      OpInsert,
	})

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("Handler thứ hai phải vẫn nhận được event dù handler khác panic")
	}
}
