package amqp

import (
	"testing"

	"sman/internal/core"
)

func TestTransactionSyncMessageJSON(t *testing.T) {
	msg := NewTransactionSyncMessage(ActionCreate, core.Transaction{
		ID:       "abc",
		Type:     core.Expense,
		Category: "餐饮",
		Group:    "饮食",
		Amount:   core.Money{Cents: 2350},
		Date:     "2025-08-30",
		Note:     "奶茶",
	})
	if msg.Timestamp.IsZero() {
		t.Fatal("timestamp should be set")
	}

	raw, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := TransactionSyncMessageFromJSON(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Action != ActionCreate {
		t.Fatalf("action = %q", got.Action)
	}
	if got.Transaction.ID != "abc" || got.Transaction.Amount.Cents != 2350 {
		t.Fatalf("transaction fields lost: %+v", got.Transaction)
	}
	if !got.Timestamp.Equal(msg.Timestamp) {
		t.Fatalf("timestamp = %v, want %v", got.Timestamp, msg.Timestamp)
	}
}

func TestTransactionSyncMessageInvalidJSON(t *testing.T) {
	if _, err := TransactionSyncMessageFromJSON([]byte(`{"action": 5}`)); err == nil {
		t.Fatal("expected error for invalid payload")
	}
}
