package store

import (
	"context"

	"sman/internal/core"
)

// Ports for persistence adapters.
type (
	// TransactionRepository stores the ledger newest-first.
	TransactionRepository interface {
		// Add inserts a transaction at the head of the ledger.
		Add(ctx context.Context, tx core.Transaction) error
		// AddBatch inserts imported transactions ahead of the existing
		// ones, preserving their relative order.
		AddBatch(ctx context.Context, txs []core.Transaction) error
		// List returns all transactions, newest first.
		List(ctx context.Context) ([]core.Transaction, error)
		// Delete removes a transaction by id. Returns core.ErrNotFound
		// when no transaction has that id.
		Delete(ctx context.Context, id string) error
	}

	// DiaryRepository stores at most one diary per date. Method names
	// carry the Diary suffix so the interface can share a method set
	// with TransactionRepository in Store.
	DiaryRepository interface {
		UpsertDiary(ctx context.Context, d core.Diary) error
		// DeleteDiary removes the diary for a date. Deleting a date
		// with no diary is not an error.
		DeleteDiary(ctx context.Context, date string) error
		// GetDiary returns core.ErrNotFound when the date has no diary.
		GetDiary(ctx context.Context, date string) (core.Diary, error)
		ListDiaries(ctx context.Context) ([]core.Diary, error)
	}
)

// Store is the unified persistence surface the services operate on.
type Store interface {
	TransactionRepository
	DiaryRepository
}
