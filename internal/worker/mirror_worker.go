// Package worker consumes ledger sync messages and mirrors them into an
// external sheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"sman/internal/amqp"
	"sman/internal/sheets"
)

type MirrorWorker struct {
	writer  sheets.MirrorWriter
	deleter sheets.MirrorDeleter
}

func NewMirrorWorker(writer sheets.MirrorWriter, deleter sheets.MirrorDeleter) *MirrorWorker {
	return &MirrorWorker{writer: writer, deleter: deleter}
}

// HandleSyncMessage processes one sync message. Messages carry the full
// transaction, so no store lookup happens here.
func (w *MirrorWorker) HandleSyncMessage(ctx context.Context, msg *amqp.TransactionSyncMessage) error {
	switch msg.Action {
	case amqp.ActionCreate:
		ref, err := w.writer.AppendTransaction(ctx, msg.Transaction)
		if err != nil {
			return fmt.Errorf("mirror transaction %s: %w", msg.Transaction.ID, err)
		}
		slog.InfoContext(ctx, "Mirrored transaction",
			"transaction_id", msg.Transaction.ID,
			"row_ref", ref)
		return nil

	case amqp.ActionDelete:
		if w.deleter == nil {
			slog.WarnContext(ctx, "No mirror deleter configured, skipping delete",
				"transaction_id", msg.Transaction.ID)
			return nil
		}
		if err := w.deleter.DeleteTransaction(ctx, msg.Transaction.ID); err != nil {
			return fmt.Errorf("unmirror transaction %s: %w", msg.Transaction.ID, err)
		}
		return nil

	default:
		// Unknown actions are dropped so they do not requeue forever.
		slog.WarnContext(ctx, "Unknown sync action, dropping message",
			"action", msg.Action,
			"transaction_id", msg.Transaction.ID)
		return nil
	}
}

// Run consumes sync messages until ctx is cancelled.
func (w *MirrorWorker) Run(ctx context.Context, client *amqp.Client) error {
	return client.ConsumeTransactionSync(ctx, func(msg *amqp.TransactionSyncMessage) error {
		return w.HandleSyncMessage(ctx, msg)
	})
}
