package core

import "strings"

const (
	PeriodDay   PeriodMode = "day"
	PeriodMonth PeriodMode = "month"
	PeriodYear  PeriodMode = "year"
	PeriodAll   PeriodMode = "all"
)

type PeriodMode string

// Period selects transactions and diaries for display: a single day, a
// month prefix, a year prefix, or everything.
type Period struct {
	Mode  PeriodMode
	Value string // "2025-08-31", "2025-08", "2025"; empty for PeriodAll
}

func (m PeriodMode) Valid() bool {
	switch m {
	case PeriodDay, PeriodMonth, PeriodYear, PeriodAll:
		return true
	}
	return false
}

// Day returns a period matching exactly one date.
func Day(date string) Period { return Period{Mode: PeriodDay, Value: date} }

// Month returns a period matching a "YYYY-MM" prefix.
func Month(yearMonth string) Period { return Period{Mode: PeriodMonth, Value: yearMonth} }

// Year returns a period matching a "YYYY" prefix.
func Year(year string) Period { return Period{Mode: PeriodYear, Value: year} }

// All returns the unbounded period.
func All() Period { return Period{Mode: PeriodAll} }

// Contains reports whether a YYYY-MM-DD date falls inside the period.
func (p Period) Contains(date string) bool {
	switch p.Mode {
	case PeriodDay:
		return date == p.Value
	case PeriodMonth, PeriodYear:
		return strings.HasPrefix(date, p.Value)
	default:
		return true
	}
}

// FilterTransactions returns the transactions whose date the period
// covers, preserving input order.
func FilterTransactions(txs []Transaction, p Period) []Transaction {
	if p.Mode == PeriodAll {
		return txs
	}
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if p.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// FilterDiaries returns the diaries whose date the period covers,
// preserving input order.
func FilterDiaries(ds []Diary, p Period) []Diary {
	if p.Mode == PeriodAll {
		return ds
	}
	out := make([]Diary, 0, len(ds))
	for _, d := range ds {
		if p.Contains(d.Date) {
			out = append(out, d)
		}
	}
	return out
}
