package amqp

import (
	"encoding/json"
	"time"

	"sman/internal/core"
)

// Sync message actions.
const (
	ActionCreate = "create"
	ActionDelete = "delete"
)

// TransactionSyncMessage mirrors a ledger change to downstream sinks.
// It carries the full row so the worker never reads the database back.
type TransactionSyncMessage struct {
	Action      string           `json:"action"`
	Transaction core.Transaction `json:"transaction"`
	Timestamp   time.Time        `json:"timestamp"`
}

func NewTransactionSyncMessage(action string, tx core.Transaction) *TransactionSyncMessage {
	return &TransactionSyncMessage{
		Action:      action,
		Transaction: tx,
		Timestamp:   time.Now(),
	}
}

func (m *TransactionSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionSyncMessageFromJSON(data []byte) (*TransactionSyncMessage, error) {
	var msg TransactionSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
