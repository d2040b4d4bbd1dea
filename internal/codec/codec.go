// Package codec reads and writes the plain-text interchange format for
// transaction and diary collections:
//
//	---SMAN TRANSACTIONS---
//	<date>|<type>|<category>|<amount>|<note>
//	---SMAN DIARIES---
//	<date>|<content with newlines escaped as \n>
//
// The note field is joined with the other fields by '|' without any
// escaping. That is a known, deliberate format limitation: a note that
// itself contains '|' will misparse on import. Changing it would need a
// new header version, not different parse semantics.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"sman/internal/core"
)

const (
	transactionsHeader = "---SMAN TRANSACTIONS---"
	diariesHeader      = "---SMAN DIARIES---"
)

// ExportFilename names an export file after the record date it was
// taken on.
func ExportFilename(date string) string {
	return fmt.Sprintf("sman_finance_%s.txt", date)
}

// Export writes both collections in the interchange format.
func Export(w io.Writer, txs []core.Transaction, diaries []core.Diary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, transactionsHeader)
	for _, t := range txs {
		fmt.Fprintf(bw, "%s|%s|%s|%s|%s\n", t.Date, t.Type, t.Category, t.Amount.String(), t.Note)
	}
	fmt.Fprintln(bw, diariesHeader)
	for _, d := range diaries {
		fmt.Fprintf(bw, "%s|%s\n", d.Date, strings.ReplaceAll(d.Content, "\n", `\n`))
	}
	return bw.Flush()
}

// ExportString renders the collections into a string.
func ExportString(txs []core.Transaction, diaries []core.Diary) string {
	var sb strings.Builder
	_ = Export(&sb, txs, diaries)
	return sb.String()
}

// Import parses the interchange format back into collections. Malformed
// lines are dropped silently; there is no per-line error reporting and
// only a read failure aborts. Every imported transaction gets a fresh
// identifier (the format carries none).
func Import(r io.Reader) ([]core.Transaction, []core.Diary, error) {
	var (
		txs     []core.Transaction
		diaries []core.Diary
		section string
	)
	now := time.Now()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.Contains(line, transactionsHeader) {
			section = "transactions"
			continue
		}
		if strings.Contains(line, diariesHeader) {
			section = "diaries"
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch section {
		case "transactions":
			if t, ok := parseTransactionLine(line, now); ok {
				txs = append(txs, t)
			}
		case "diaries":
			if d, ok := parseDiaryLine(line); ok {
				diaries = append(diaries, d)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read import data: %w", err)
	}
	return txs, diaries, nil
}

func parseTransactionLine(line string, now time.Time) (core.Transaction, bool) {
	parts := strings.Split(line, "|")
	if len(parts) < 4 {
		return core.Transaction{}, false
	}
	date, typ, cat, amount := parts[0], parts[1], parts[2], parts[3]
	if date == "" || typ == "" || cat == "" || amount == "" {
		return core.Transaction{}, false
	}
	cents, err := core.ParseDecimalToCents(amount)
	if err != nil {
		// The original tolerated NaN amounts here; a typed amount field
		// cannot, so the line is dropped like any other malformed one.
		return core.Transaction{}, false
	}
	note := ""
	if len(parts) > 4 {
		note = parts[4]
	}
	return core.Transaction{
		ID:        uuid.NewString(),
		Type:      core.TransactionType(typ),
		Category:  cat,
		Amount:    core.Money{Cents: cents},
		Date:      date,
		Note:      note,
		CreatedAt: now,
	}, true
}

func parseDiaryLine(line string) (core.Diary, bool) {
	parts := strings.SplitN(line, "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return core.Diary{}, false
	}
	return core.Diary{
		Date:    parts[0],
		Content: strings.ReplaceAll(parts[1], `\n`, "\n"),
	}, true
}
