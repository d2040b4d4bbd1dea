package worker

import (
	"context"
	"errors"
	"testing"

	"sman/internal/amqp"
	"sman/internal/core"
)

type fakeSink struct {
	appended []core.Transaction
	deleted  []string
	err      error
}

func (f *fakeSink) AppendTransaction(_ context.Context, tx core.Transaction) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.appended = append(f.appended, tx)
	return "Ledger!A2:G2", nil
}

func (f *fakeSink) DeleteTransaction(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func validTx() core.Transaction {
	return core.Transaction{
		ID:       "t1",
		Type:     core.Expense,
		Category: "餐饮",
		Amount:   core.Money{Cents: 100},
		Date:     "2025-08-30",
	}
}

func TestHandleSyncMessageCreate(t *testing.T) {
	sink := &fakeSink{}
	w := NewMirrorWorker(sink, sink)

	msg := amqp.NewTransactionSyncMessage(amqp.ActionCreate, validTx())
	if err := w.HandleSyncMessage(context.Background(), msg); err != nil {
		t.Fatal(err)
	}
	if len(sink.appended) != 1 || sink.appended[0].ID != "t1" {
		t.Fatalf("unexpected appends: %+v", sink.appended)
	}
}

func TestHandleSyncMessageDelete(t *testing.T) {
	sink := &fakeSink{}
	w := NewMirrorWorker(sink, sink)

	msg := amqp.NewTransactionSyncMessage(amqp.ActionDelete, core.Transaction{ID: "t1"})
	if err := w.HandleSyncMessage(context.Background(), msg); err != nil {
		t.Fatal(err)
	}
	if len(sink.deleted) != 1 || sink.deleted[0] != "t1" {
		t.Fatalf("unexpected deletes: %+v", sink.deleted)
	}
}

func TestHandleSyncMessageDeleteWithoutDeleter(t *testing.T) {
	sink := &fakeSink{}
	w := NewMirrorWorker(sink, nil)

	msg := amqp.NewTransactionSyncMessage(amqp.ActionDelete, core.Transaction{ID: "t1"})
	if err := w.HandleSyncMessage(context.Background(), msg); err != nil {
		t.Fatalf("missing deleter should be skipped, got %v", err)
	}
}

func TestHandleSyncMessagePropagatesSinkError(t *testing.T) {
	sinkErr := errors.New("quota exceeded")
	sink := &fakeSink{err: sinkErr}
	w := NewMirrorWorker(sink, sink)

	msg := amqp.NewTransactionSyncMessage(amqp.ActionCreate, validTx())
	if err := w.HandleSyncMessage(context.Background(), msg); !errors.Is(err, sinkErr) {
		t.Fatalf("got %v, want wrapped sink error", err)
	}
}

func TestHandleSyncMessageUnknownActionDropped(t *testing.T) {
	sink := &fakeSink{}
	w := NewMirrorWorker(sink, sink)

	msg := amqp.NewTransactionSyncMessage("rename", validTx())
	if err := w.HandleSyncMessage(context.Background(), msg); err != nil {
		t.Fatalf("unknown action should not requeue, got %v", err)
	}
	if len(sink.appended) != 0 || len(sink.deleted) != 0 {
		t.Fatal("unknown action should touch nothing")
	}
}
