package voice

import (
	"context"
	"strings"
	"testing"

	"sman/internal/core"
)

func TestParseExpenseWithUnit(t *testing.T) {
	d := Parse(Normalize("今天花了23块奶茶"))
	if d.DateOffset == nil || *d.DateOffset != 0 {
		t.Fatalf("date offset = %v, want 0", d.DateOffset)
	}
	if d.Amount != "23" {
		t.Fatalf("amount = %q, want 23", d.Amount)
	}
	if d.Type != core.Expense || d.Category != "餐饮" {
		t.Fatalf("type/category = %s/%s, want expense/餐饮", d.Type, d.Category)
	}
	if strings.Contains(d.Note, "23") || strings.Contains(d.Note, "块") || strings.Contains(d.Note, "花了") {
		t.Fatalf("note %q still contains matched tokens", d.Note)
	}
}

func TestParseIncome(t *testing.T) {
	d := Parse(Normalize("收到工资5000"))
	if d.Type != core.Income || d.Category != "收入" {
		t.Fatalf("type/category = %s/%s, want income/收入", d.Type, d.Category)
	}
	if d.Amount != "5000" {
		t.Fatalf("amount = %q, want 5000", d.Amount)
	}
}

func TestParseDateMarkers(t *testing.T) {
	cases := []struct {
		in     string
		offset int
	}{
		{"前天打车15元", -2},
		{"昨天打车15元", -1},
		{"今天打车15元", 0},
		{"明天打车15元", 1},
		{"后天打车15元", 2},
	}
	for _, tc := range cases {
		d := Parse(tc.in)
		if d.DateOffset == nil || *d.DateOffset != tc.offset {
			t.Fatalf("Parse(%q) offset = %v, want %d", tc.in, d.DateOffset, tc.offset)
		}
	}
	if d := Parse("打车15元"); d.DateOffset != nil {
		t.Fatalf("offset = %v, want unset", d.DateOffset)
	}
}

func TestParseAmountTiers(t *testing.T) {
	// Verb tier: number preceded by a spending verb, no unit.
	d := Parse("花费45午饭")
	if d.Amount != "45" {
		t.Fatalf("verb tier amount = %q, want 45", d.Amount)
	}
	// Bare tier: first number anywhere.
	d = Parse("奶茶12.5")
	if d.Amount != "12.5" {
		t.Fatalf("bare tier amount = %q, want 12.5", d.Amount)
	}
	// Nothing numeric: amount stays unset.
	d = Parse("喝奶茶")
	if d.Amount != "" {
		t.Fatalf("amount = %q, want unset", d.Amount)
	}
	if d.Category != "餐饮" {
		t.Fatalf("category = %q, want 餐饮", d.Category)
	}
}

func TestParseLongestKeywordWins(t *testing.T) {
	// 奶茶 (2 runes) beats 喝 (1 rune) even though 喝 appears first in
	// the table.
	d := Parse("喝奶茶10元")
	if d.Category != "餐饮" {
		t.Fatalf("category = %q, want 餐饮", d.Category)
	}
	// 话费 resolves to 话, not 水/电 single-rune hits elsewhere.
	d = Parse("交话费50元")
	if d.Category != "话" {
		t.Fatalf("category = %q, want 话", d.Category)
	}
}

func TestParseNoFieldsDetected(t *testing.T) {
	d := Parse("嗯嗯嗯")
	if d.DateOffset != nil || d.Amount != "" || d.Category != "" || d.Type != "" {
		t.Fatalf("expected empty draft, got %+v", d)
	}
}

func TestDraftDate(t *testing.T) {
	offset := -1
	d := Draft{DateOffset: &offset}
	got, ok := d.Date(func() string { return "2025-08-31" })
	if !ok || got != "2025-08-30" {
		t.Fatalf("Date() = %q ok=%v, want 2025-08-30", got, ok)
	}
	if _, ok := (Draft{}).Date(core.Today); ok {
		t.Fatal("unset offset should not resolve")
	}
}

type fakeRecognizer struct {
	transcript string
	err        error
}

func (f *fakeRecognizer) Recognize(ctx context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.transcript, nil
}

func TestCoordinatorListen(t *testing.T) {
	c := NewCoordinator(&fakeRecognizer{transcript: "今天花了23块奶茶"})
	got, err := c.Listen(context.Background())
	if err != nil || got != "今天花了23块奶茶" {
		t.Fatalf("Listen = %q, %v", got, err)
	}
}

func TestCoordinatorReasons(t *testing.T) {
	// no-speech is silently ignored.
	c := NewCoordinator(&fakeRecognizer{err: &ReasonError{Reason: ReasonNoSpeech}})
	if got, err := c.Listen(context.Background()); err != nil || got != "" {
		t.Fatalf("no-speech: got %q, %v", got, err)
	}
	// permission denial surfaces a message.
	c = NewCoordinator(&fakeRecognizer{err: &ReasonError{Reason: ReasonNotAllowed}})
	if _, err := c.Listen(context.Background()); err == nil {
		t.Fatal("not-allowed should surface an error")
	}
	// unknown reasons are logged only.
	c = NewCoordinator(&fakeRecognizer{err: &ReasonError{Reason: "aborted"}})
	if got, err := c.Listen(context.Background()); err != nil || got != "" {
		t.Fatalf("unknown reason: got %q, %v", got, err)
	}
}

type blockingRecognizer struct {
	started chan struct{}
}

func (b *blockingRecognizer) Recognize(ctx context.Context) (string, error) {
	if b.started != nil {
		close(b.started)
		b.started = nil
	}
	<-ctx.Done()
	return "", ctx.Err()
}

func TestCoordinatorStop(t *testing.T) {
	rec := &blockingRecognizer{started: make(chan struct{})}
	c := NewCoordinator(rec)
	done := make(chan error, 1)
	go func() {
		_, err := c.Listen(context.Background())
		done <- err
	}()
	<-rec.started
	c.Stop()
	if err := <-done; err == nil {
		t.Fatal("stopped session should report cancellation")
	}
}
