// Package kv persists the ledger in BadgerDB under the same versioned
// keys the client-side storage used, one JSON document per collection.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"sman/internal/core"
)

// Versioned keys. Bumping a suffix means a format change and a fresh
// collection, not an in-place migration.
const (
	transactionsKey = "sman_transactions_v2"
	diariesKey      = "sman_diaries_v2"
)

type Store struct {
	db *badger.DB
}

func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1).
		WithCompactL0OnClose(true).
		WithValueLogFileSize(16 << 20).
		WithMemTableSize(16 << 20)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Add(ctx context.Context, tx core.Transaction) error {
	return s.updateTransactions(func(txs []core.Transaction) []core.Transaction {
		return append([]core.Transaction{tx}, txs...)
	})
}

func (s *Store) AddBatch(ctx context.Context, batch []core.Transaction) error {
	if len(batch) == 0 {
		return nil
	}
	return s.updateTransactions(func(txs []core.Transaction) []core.Transaction {
		merged := make([]core.Transaction, 0, len(batch)+len(txs))
		merged = append(merged, batch...)
		return append(merged, txs...)
	})
}

func (s *Store) List(ctx context.Context) ([]core.Transaction, error) {
	var txs []core.Transaction
	err := s.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, transactionsKey, &txs)
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	found := false
	err := s.updateTransactions(func(txs []core.Transaction) []core.Transaction {
		for i, tx := range txs {
			if tx.ID == id {
				found = true
				return append(txs[:i], txs[i+1:]...)
			}
		}
		return txs
	})
	if err != nil {
		return err
	}
	if !found {
		return core.ErrNotFound
	}
	return nil
}

func (s *Store) UpsertDiary(ctx context.Context, d core.Diary) error {
	return s.updateDiaries(func(m map[string]core.Diary) {
		m[d.Date] = d
	})
}

func (s *Store) DeleteDiary(ctx context.Context, date string) error {
	return s.updateDiaries(func(m map[string]core.Diary) {
		delete(m, date)
	})
}

func (s *Store) GetDiary(ctx context.Context, date string) (core.Diary, error) {
	diaries, err := s.ListDiaries(ctx)
	if err != nil {
		return core.Diary{}, err
	}
	for _, d := range diaries {
		if d.Date == date {
			return d, nil
		}
	}
	return core.Diary{}, core.ErrNotFound
}

func (s *Store) ListDiaries(ctx context.Context) ([]core.Diary, error) {
	var diaries []core.Diary
	err := s.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, diariesKey, &diaries)
	})
	if err != nil {
		return nil, fmt.Errorf("list diaries: %w", err)
	}
	return diaries, nil
}

func (s *Store) updateTransactions(mutate func([]core.Transaction) []core.Transaction) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		var txs []core.Transaction
		if err := readJSON(txn, transactionsKey, &txs); err != nil {
			return err
		}
		return writeJSON(txn, transactionsKey, mutate(txs))
	})
	if err != nil {
		return fmt.Errorf("update transactions: %w", err)
	}
	return nil
}

func (s *Store) updateDiaries(mutate func(map[string]core.Diary)) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		var diaries []core.Diary
		if err := readJSON(txn, diariesKey, &diaries); err != nil {
			return err
		}
		byDate := make(map[string]core.Diary, len(diaries))
		for _, d := range diaries {
			byDate[d.Date] = d
		}
		mutate(byDate)
		out := make([]core.Diary, 0, len(byDate))
		for _, d := range byDate {
			out = append(out, d)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
		return writeJSON(txn, diariesKey, out)
	})
	if err != nil {
		return fmt.Errorf("update diaries: %w", err)
	}
	return nil
}

func readJSON(txn *badger.Txn, key string, dst any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(v []byte) error {
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		return nil
	})
}

func writeJSON(txn *badger.Txn, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return txn.Set([]byte(key), raw)
}
