package core

import "testing"

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		tx(Expense, "餐饮", 10000, "2025-08-10"),
		tx(Expense, "交通", 5000, "2025-08-11"),
		tx(Income, "收入", 20000, "2025-08-12"),
	}
	s := Summarize(txs, Month("2025-08"))
	if s.Expense.Cents != 15000 {
		t.Fatalf("expense = %d, want 15000", s.Expense.Cents)
	}
	if s.Income.Cents != 20000 {
		t.Fatalf("income = %d, want 20000", s.Income.Cents)
	}
	if s.Balance.Cents != 5000 {
		t.Fatalf("balance = %d, want 5000", s.Balance.Cents)
	}
	var total int64
	for _, ca := range s.ExpenseByCategory {
		total += ca.Amount.Cents
	}
	if total != 15000 {
		t.Fatalf("breakdown sums to %d, want 15000", total)
	}
}

func TestSummarizeBreakdownOrder(t *testing.T) {
	txs := []Transaction{
		tx(Expense, "交通", 3000, "2025-08-10"),
		tx(Expense, "餐饮", 9000, "2025-08-10"),
		tx(Expense, "住宿", 3000, "2025-08-10"), // ties 交通; 交通 was seen first
	}
	s := Summarize(txs, All())
	want := []string{"餐饮", "交通", "住宿"}
	if len(s.ExpenseByCategory) != len(want) {
		t.Fatalf("got %d categories, want %d", len(s.ExpenseByCategory), len(want))
	}
	for i, cat := range want {
		if s.ExpenseByCategory[i].Category != cat {
			t.Fatalf("breakdown[%d] = %s, want %s", i, s.ExpenseByCategory[i].Category, cat)
		}
	}
}

func TestSummarizePeriodFilter(t *testing.T) {
	txs := []Transaction{
		tx(Expense, "餐饮", 100, "2025-08-10"),
		tx(Expense, "餐饮", 200, "2025-09-10"),
		tx(Expense, "餐饮", 400, "2024-08-10"),
	}
	cases := []struct {
		p    Period
		want int64
	}{
		{Day("2025-08-10"), 100},
		{Month("2025-08"), 100},
		{Year("2025"), 300},
		{All(), 700},
	}
	for i, tc := range cases {
		if got := Summarize(txs, tc.p).Expense.Cents; got != tc.want {
			t.Fatalf("case %d expense = %d, want %d", i, got, tc.want)
		}
	}
}

func TestSummarizeDayDiaryFlag(t *testing.T) {
	txs := []Transaction{tx(Expense, "餐饮", 100, "2025-08-10")}
	diaries := []Diary{{Date: "2025-08-10", Content: "下雨"}}

	ds := SummarizeDay(txs, diaries, "2025-08-10")
	if ds.Expense.Cents != 100 || !ds.HasDiary {
		t.Fatalf("unexpected day summary: %+v", ds)
	}
	ds = SummarizeDay(txs, diaries, "2025-08-11")
	if ds.Expense.Cents != 0 || ds.HasDiary {
		t.Fatalf("unexpected day summary: %+v", ds)
	}
}

func TestMonthCalendar(t *testing.T) {
	txs := []Transaction{
		tx(Expense, "餐饮", 100, "2025-02-01"),
		tx(Income, "收入", 500, "2025-02-28"),
	}
	diaries := []Diary{{Date: "2025-02-14", Content: "情人节"}}

	days := MonthCalendar(txs, diaries, "2025-02")
	if len(days) != 28 {
		t.Fatalf("got %d days, want 28", len(days))
	}
	if days[0].Expense.Cents != 100 {
		t.Fatalf("day 1 expense = %d, want 100", days[0].Expense.Cents)
	}
	if !days[13].HasDiary {
		t.Fatal("day 14 should carry the diary flag")
	}
	if days[27].Income.Cents != 500 {
		t.Fatalf("day 28 income = %d, want 500", days[27].Income.Cents)
	}

	if got := MonthCalendar(txs, diaries, "bogus"); got != nil {
		t.Fatal("bad month should return nil")
	}
}
