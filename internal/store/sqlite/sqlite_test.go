package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"sman/internal/core"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sman.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func tx(id, date string, cents int64) core.Transaction {
	return core.Transaction{
		ID:        id,
		Type:      core.Expense,
		Category:  "餐饮",
		Group:     "娱乐大类",
		Amount:    core.Money{Cents: cents},
		Date:      date,
		Note:      "备注",
		CreatedAt: time.Now(),
	}
}

func TestAddListDelete(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	if err := s.Add(ctx, tx("a", "2025-08-01", 1200)); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, tx("b", "2025-08-02", 800)); err != nil {
		t.Fatal(err)
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[1].Amount.Cents != 1200 || got[1].Note != "备注" || got[1].Group != "娱乐大类" {
		t.Fatalf("fields lost: %+v", got[1])
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "a"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestAddBatchPrepends(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	_ = s.Add(ctx, tx("old", "2025-08-01", 100))
	if err := s.AddBatch(ctx, []core.Transaction{
		tx("i1", "2025-08-02", 200),
		tx("i2", "2025-08-03", 300),
	}); err != nil {
		t.Fatal(err)
	}

	got, _ := s.List(ctx)
	want := []string{"i1", "i2", "old"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestDiaryUpsertAndDelete(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	if _, err := s.GetDiary(ctx, "2025-08-01"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("get missing: got %v", err)
	}
	_ = s.UpsertDiary(ctx, core.Diary{Date: "2025-08-01", Content: "v1"})
	_ = s.UpsertDiary(ctx, core.Diary{Date: "2025-08-01", Content: "v2"})
	_ = s.UpsertDiary(ctx, core.Diary{Date: "2025-08-03", Content: "x"})

	d, err := s.GetDiary(ctx, "2025-08-01")
	if err != nil || d.Content != "v2" {
		t.Fatalf("got %+v err %v", d, err)
	}

	all, _ := s.ListDiaries(ctx)
	if len(all) != 2 || all[0].Date != "2025-08-03" {
		t.Fatalf("unexpected list: %+v", all)
	}

	if err := s.DeleteDiary(ctx, "2025-08-01"); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteDiary(ctx, "2025-08-01"); err != nil {
		t.Fatalf("deleting absent diary should be a no-op, got %v", err)
	}
}
