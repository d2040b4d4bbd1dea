package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

type (
	TransactionType string

	// Transaction is one income or expense record. Immutable once created
	// except for deletion. Amount is always non-negative; the sign is
	// carried by Type.
	Transaction struct {
		ID        string          `json:"id"`
		Type      TransactionType `json:"type"`
		Category  string          `json:"category"`
		Group     string          `json:"categoryGroup"`
		Amount    Money           `json:"amount"`
		Date      string          `json:"date"` // YYYY-MM-DD
		Note      string          `json:"note"`
		CreatedAt time.Time       `json:"createdAt"`
	}

	// Diary is one free-text journal entry, at most one per calendar date.
	Diary struct {
		Date    string `json:"date"`
		Content string `json:"content"`
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrEmptyCategory = errors.New("empty category")
	ErrNotFound      = errors.New("not found")
)

// DateLayout is the calendar date form used everywhere: persisted state,
// the export format and period filters.
const DateLayout = "2006-01-02"

func (t TransactionType) Valid() bool {
	return t == Expense || t == Income
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(DateLayout)
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if !ValidDate(t.Date) {
		return ErrInvalidDate
	}
	return t.Amount.Validate()
}

func (d Diary) Validate() error {
	if !ValidDate(d.Date) {
		return ErrInvalidDate
	}
	return nil
}

// Empty reports whether the diary content trims to nothing; saving an
// empty diary removes the entry for that date.
func (d Diary) Empty() bool {
	return strings.TrimSpace(d.Content) == ""
}
