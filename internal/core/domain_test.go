package core

import (
	"testing"
	"time"
)

func tx(typ TransactionType, cat string, cents int64, date string) Transaction {
	return Transaction{
		ID:        "t-" + cat,
		Type:      typ,
		Category:  cat,
		Amount:    Money{Cents: cents},
		Date:      date,
		CreatedAt: time.Now(),
	}
}

func TestTransactionValidate(t *testing.T) {
	good := tx(Expense, "餐饮", 2300, "2025-08-30")
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		tx("transfer", "餐饮", 100, "2025-08-30"), // unknown type
		tx(Expense, "", 100, "2025-08-30"),
		tx(Expense, "餐饮", 0, "2025-08-30"), // zero amount rejected
		tx(Expense, "餐饮", 100, "2025-8-30"),
		tx(Expense, "餐饮", 100, "not-a-date"),
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDiaryEmpty(t *testing.T) {
	if !(Diary{Date: "2025-08-30", Content: "  \n\t"}).Empty() {
		t.Fatal("whitespace-only content should be empty")
	}
	if (Diary{Date: "2025-08-30", Content: "乱七八糟"}).Empty() {
		t.Fatal("non-blank content should not be empty")
	}
}

func TestValidDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-08-31", true},
		{"2025-02-29", false},
		{"2024-02-29", true},
		{"2025-8-31", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidDate(tc.in); got != tc.ok {
			t.Fatalf("ValidDate(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}
