package memory

import (
	"context"
	"sort"
	"sync"

	"sman/internal/core"
)

// Store keeps everything in process memory. It is the default backend
// and the test double for the service layer.
type Store struct {
	mu      sync.Mutex
	txs     []core.Transaction
	diaries map[string]core.Diary
}

func New() *Store {
	return &Store{diaries: make(map[string]core.Diary)}
}

func (s *Store) Add(_ context.Context, tx core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append([]core.Transaction{tx}, s.txs...)
	return nil
}

func (s *Store) AddBatch(_ context.Context, txs []core.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := make([]core.Transaction, 0, len(txs)+len(s.txs))
	merged = append(merged, txs...)
	merged = append(merged, s.txs...)
	s.txs = merged
	return nil
}

func (s *Store) List(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txs...), nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.txs {
		if tx.ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

func (s *Store) UpsertDiary(_ context.Context, d core.Diary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diaries[d.Date] = d
	return nil
}

func (s *Store) DeleteDiary(_ context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.diaries, date)
	return nil
}

func (s *Store) GetDiary(_ context.Context, date string) (core.Diary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.diaries[date]
	if !ok {
		return core.Diary{}, core.ErrNotFound
	}
	return d, nil
}

func (s *Store) ListDiaries(_ context.Context) ([]core.Diary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Diary, 0, len(s.diaries))
	for _, d := range s.diaries {
		out = append(out, d)
	}
	// Map iteration order is random; keep exports stable.
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}
