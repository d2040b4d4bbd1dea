package core

import (
	"sort"
	"time"
)

// CategoryAmount is an expense sum keyed by category label.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   Money  `json:"amount"`
}

// Summary is the derived view over a period: totals, balance and the
// per-category expense breakdown sorted by sum descending.
type Summary struct {
	Income            Money            `json:"incomeTotal"`
	Expense           Money            `json:"expenseTotal"`
	Balance           Money            `json:"balance"`
	ExpenseByCategory []CategoryAmount `json:"expenseByCategory"`
}

// DaySummary annotates one calendar date with its totals and whether a
// diary entry exists for it. The diary flag is display-only.
type DaySummary struct {
	Date     string `json:"date"`
	Income   Money  `json:"incomeTotal"`
	Expense  Money  `json:"expenseTotal"`
	HasDiary bool   `json:"hasDiary"`
}

// Summarize folds the transactions covered by the period into totals and
// the expense-by-category breakdown. The breakdown is sorted by sum
// descending; equal sums keep first-encountered category order (the sort
// is stable over input order).
func Summarize(txs []Transaction, p Period) Summary {
	var s Summary
	sums := make(map[string]int64)
	var order []string
	for _, t := range txs {
		if !p.Contains(t.Date) {
			continue
		}
		switch t.Type {
		case Income:
			s.Income.Cents += t.Amount.Cents
		case Expense:
			s.Expense.Cents += t.Amount.Cents
			if _, seen := sums[t.Category]; !seen {
				order = append(order, t.Category)
			}
			sums[t.Category] += t.Amount.Cents
		}
	}
	s.Balance.Cents = s.Income.Cents - s.Expense.Cents
	s.ExpenseByCategory = make([]CategoryAmount, 0, len(order))
	for _, cat := range order {
		s.ExpenseByCategory = append(s.ExpenseByCategory, CategoryAmount{
			Category: cat,
			Amount:   Money{Cents: sums[cat]},
		})
	}
	sort.SliceStable(s.ExpenseByCategory, func(i, j int) bool {
		return s.ExpenseByCategory[i].Amount.Cents > s.ExpenseByCategory[j].Amount.Cents
	})
	return s
}

// SummarizeDay reports one date's totals plus diary presence.
func SummarizeDay(txs []Transaction, diaries []Diary, date string) DaySummary {
	ds := DaySummary{Date: date}
	for _, t := range txs {
		if t.Date != date {
			continue
		}
		switch t.Type {
		case Income:
			ds.Income.Cents += t.Amount.Cents
		case Expense:
			ds.Expense.Cents += t.Amount.Cents
		}
	}
	for _, d := range diaries {
		if d.Date == date {
			ds.HasDiary = true
			break
		}
	}
	return ds
}

// MonthCalendar returns one DaySummary per day of the given "YYYY-MM"
// month, in calendar order. Days without activity are included so the
// caller can render a full grid.
func MonthCalendar(txs []Transaction, diaries []Diary, yearMonth string) []DaySummary {
	first, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return nil
	}
	diaryDates := make(map[string]bool, len(diaries))
	for _, d := range diaries {
		diaryDates[d.Date] = true
	}
	days := first.AddDate(0, 1, -1).Day()
	out := make([]DaySummary, days)
	byDate := make(map[string]*DaySummary, days)
	for i := range out {
		date := first.AddDate(0, 0, i).Format(DateLayout)
		out[i] = DaySummary{Date: date, HasDiary: diaryDates[date]}
		byDate[date] = &out[i]
	}
	for _, t := range txs {
		ds, ok := byDate[t.Date]
		if !ok {
			continue
		}
		switch t.Type {
		case Income:
			ds.Income.Cents += t.Amount.Cents
		case Expense:
			ds.Expense.Cents += t.Amount.Cents
		}
	}
	return out
}
