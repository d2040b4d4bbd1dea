package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"sman/internal/core"
)

type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Add(ctx context.Context, tx core.Transaction) error {
	return s.AddBatch(ctx, []core.Transaction{tx})
}

// AddBatch inserts the transactions ahead of everything already stored.
// Sequence numbers grow downward from the current minimum so a prepend
// never rewrites existing rows.
func (s *Store) AddBatch(ctx context.Context, txs []core.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	dbtx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer dbtx.Rollback()

	var minSeq int64
	if err := dbtx.QueryRowContext(ctx,
		`SELECT COALESCE(MIN(seq), 0) FROM transactions`).Scan(&minSeq); err != nil {
		return fmt.Errorf("read min seq: %w", err)
	}

	stmt, err := dbtx.PrepareContext(ctx, `
		INSERT INTO transactions (id, type, category, category_group, amount_cents, date, note, created_at, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	base := minSeq - int64(len(txs))
	for i, t := range txs {
		if _, err := stmt.ExecContext(ctx,
			t.ID, string(t.Type), t.Category, t.Group, t.Amount.Cents,
			t.Date, t.Note, t.CreatedAt.UTC().Format(time.RFC3339), base+int64(i)); err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	if err := dbtx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, category, category_group, amount_cents, date, note, created_at
		FROM transactions ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			t       core.Transaction
			typ     string
			created string
		)
		if err := rows.Scan(&t.ID, &typ, &t.Category, &t.Group,
			&t.Amount.Cents, &t.Date, &t.Note, &created); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = core.TransactionType(typ)
		if ts, err := time.Parse(time.RFC3339, created); err == nil {
			t.CreatedAt = ts
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *Store) UpsertDiary(ctx context.Context, d core.Diary) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO diaries (date, content) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET content = excluded.content`,
		d.Date, d.Content)
	if err != nil {
		return fmt.Errorf("upsert diary: %w", err)
	}
	return nil
}

func (s *Store) DeleteDiary(ctx context.Context, date string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM diaries WHERE date = ?`, date); err != nil {
		return fmt.Errorf("delete diary: %w", err)
	}
	return nil
}

func (s *Store) GetDiary(ctx context.Context, date string) (core.Diary, error) {
	var d core.Diary
	err := s.db.QueryRowContext(ctx,
		`SELECT date, content FROM diaries WHERE date = ?`, date).
		Scan(&d.Date, &d.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Diary{}, core.ErrNotFound
	}
	if err != nil {
		return core.Diary{}, fmt.Errorf("get diary: %w", err)
	}
	return d, nil
}

func (s *Store) ListDiaries(ctx context.Context) ([]core.Diary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, content FROM diaries ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("query diaries: %w", err)
	}
	defer rows.Close()

	var diaries []core.Diary
	for rows.Next() {
		var d core.Diary
		if err := rows.Scan(&d.Date, &d.Content); err != nil {
			return nil, fmt.Errorf("scan diary: %w", err)
		}
		diaries = append(diaries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate diaries: %w", err)
	}
	return diaries, nil
}
