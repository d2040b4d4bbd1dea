// Package services provides business logic and orchestration over the
// persistence ports.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"sman/internal/amqp"
	"sman/internal/category"
	"sman/internal/codec"
	"sman/internal/core"
	"sman/internal/store"
)

// SyncPublisher mirrors ledger changes to downstream consumers.
type SyncPublisher interface {
	PublishTransactionSync(ctx context.Context, msg *amqp.TransactionSyncMessage) error
}

// LedgerService orchestrates transactions and diaries across the store
// and the optional sync publisher.
type LedgerService struct {
	store     store.Store
	publisher SyncPublisher
	now       func() time.Time
}

func NewLedgerService(st store.Store, publisher SyncPublisher) *LedgerService {
	return &LedgerService{store: st, publisher: publisher, now: time.Now}
}

// CreateTransactionInput carries the user-supplied fields of a new
// transaction. Missing type defaults to expense, missing date to today.
type CreateTransactionInput struct {
	Type     core.TransactionType `json:"type"`
	Category string               `json:"category"`
	Amount   core.Money           `json:"amount"`
	Date     string               `json:"date"`
	Note     string               `json:"note"`
}

func (s *LedgerService) CreateTransaction(ctx context.Context, in CreateTransactionInput) (core.Transaction, error) {
	if in.Type == "" {
		in.Type = core.Expense
	}
	if in.Date == "" {
		in.Date = s.now().Format(core.DateLayout)
	}

	tx := core.Transaction{
		ID:        uuid.NewString(),
		Type:      in.Type,
		Category:  strings.TrimSpace(in.Category),
		Amount:    in.Amount,
		Date:      in.Date,
		Note:      strings.TrimSpace(in.Note),
		CreatedAt: s.now(),
	}
	if tx.Type == core.Income && tx.Category == "" {
		tx.Category = category.IncomeCategory.Label
	}
	tx.Group = category.GroupOf(tx.Category)

	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	if err := s.store.Add(ctx, tx); err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	// The ledger write already succeeded; a failed publish only delays
	// the mirror.
	s.publish(ctx, amqp.ActionCreate, tx)

	return tx, nil
}

func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	s.publish(ctx, amqp.ActionDelete, core.Transaction{ID: id})
	return nil
}

// ListTransactions returns the ledger filtered to a period, newest first.
func (s *LedgerService) ListTransactions(ctx context.Context, p core.Period) ([]core.Transaction, error) {
	txs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return core.FilterTransactions(txs, p), nil
}

func (s *LedgerService) Summary(ctx context.Context, p core.Period) (core.Summary, error) {
	txs, err := s.store.List(ctx)
	if err != nil {
		return core.Summary{}, fmt.Errorf("list transactions: %w", err)
	}
	return core.Summarize(txs, p), nil
}

// Calendar returns per-day totals and diary markers for a month given
// as YYYY-MM.
func (s *LedgerService) Calendar(ctx context.Context, month string) ([]core.DaySummary, error) {
	txs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	diaries, err := s.store.ListDiaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diaries: %w", err)
	}
	days := core.MonthCalendar(txs, diaries, month)
	if days == nil {
		return nil, fmt.Errorf("calendar month %q: %w", month, core.ErrInvalidDate)
	}
	return days, nil
}

// SaveDiary upserts the diary for a date. Saving empty or whitespace
// content removes the entry instead.
func (s *LedgerService) SaveDiary(ctx context.Context, d core.Diary) error {
	if !core.ValidDate(d.Date) {
		return core.ErrInvalidDate
	}
	if d.Empty() {
		if err := s.store.DeleteDiary(ctx, d.Date); err != nil {
			return fmt.Errorf("delete diary %s: %w", d.Date, err)
		}
		return nil
	}
	if err := s.store.UpsertDiary(ctx, d); err != nil {
		return fmt.Errorf("save diary %s: %w", d.Date, err)
	}
	return nil
}

func (s *LedgerService) GetDiary(ctx context.Context, date string) (core.Diary, error) {
	return s.store.GetDiary(ctx, date)
}

func (s *LedgerService) ListDiaries(ctx context.Context) ([]core.Diary, error) {
	return s.store.ListDiaries(ctx)
}

// ExportText renders the whole ledger in the delimited backup format
// and suggests a download filename.
func (s *LedgerService) ExportText(ctx context.Context) (filename, text string, err error) {
	txs, err := s.store.List(ctx)
	if err != nil {
		return "", "", fmt.Errorf("list transactions: %w", err)
	}
	diaries, err := s.store.ListDiaries(ctx)
	if err != nil {
		return "", "", fmt.Errorf("list diaries: %w", err)
	}
	date := s.now().Format(core.DateLayout)
	return codec.ExportFilename(date), codec.ExportString(txs, diaries), nil
}

// ImportResult reports how much of a backup was merged.
type ImportResult struct {
	Transactions int `json:"transactions"`
	Diaries      int `json:"diaries"`
}

// ImportText merges a backup into the store. Imported transactions go
// ahead of existing ones; diaries overwrite same-date entries.
func (s *LedgerService) ImportText(ctx context.Context, text string) (ImportResult, error) {
	txs, diaries, err := codec.Import(strings.NewReader(text))
	if err != nil {
		return ImportResult{}, fmt.Errorf("parse backup: %w", err)
	}
	// An empty backup is a valid one; merging it is a no-op.
	for i := range txs {
		txs[i].Group = category.GroupOf(txs[i].Category)
	}
	if err := s.store.AddBatch(ctx, txs); err != nil {
		return ImportResult{}, fmt.Errorf("merge transactions: %w", err)
	}
	for _, d := range diaries {
		if d.Empty() {
			continue
		}
		if err := s.store.UpsertDiary(ctx, d); err != nil {
			return ImportResult{}, fmt.Errorf("merge diary %s: %w", d.Date, err)
		}
	}

	slog.InfoContext(ctx, "Imported backup",
		"transactions", len(txs),
		"diaries", len(diaries))

	return ImportResult{Transactions: len(txs), Diaries: len(diaries)}, nil
}

func (s *LedgerService) publish(ctx context.Context, action string, tx core.Transaction) {
	if s.publisher == nil {
		return
	}
	msg := amqp.NewTransactionSyncMessage(action, tx)
	if err := s.publisher.PublishTransactionSync(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"action", action,
			"transaction_id", tx.ID,
			"error", err)
	}
}
