package voice

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"sman/internal/category"
	"sman/internal/core"
)

// Draft is a partially-filled transaction extracted from a transcript.
// Unset fields stay zero so callers can merge it into existing form
// state field by field.
type Draft struct {
	DateOffset *int                 `json:"dateOffsetDays,omitempty"` // days relative to today
	Amount     string               `json:"amount,omitempty"`         // decimal string
	Category   string               `json:"category,omitempty"`
	Type       core.TransactionType `json:"type,omitempty"`
	Note       string               `json:"note"`
}

// Date resolves the draft's relative-day offset against today, or
// returns ok=false when no day marker was spoken.
func (d Draft) Date(now func() string) (string, bool) {
	if d.DateOffset == nil {
		return "", false
	}
	base, err := time.Parse(core.DateLayout, now())
	if err != nil {
		return "", false
	}
	return base.AddDate(0, 0, *d.DateOffset).Format(core.DateLayout), true
}

// dayMarkers are scanned in order; the first one present wins and is
// removed from the working text.
var dayMarkers = []struct {
	word   string
	offset int
}{
	{"前天", -2},
	{"昨天", -1},
	{"今天", 0},
	{"明天", 1},
	{"后天", 2},
}

var (
	currencyAmount = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:元|块|钱)`)
	verbAmount     = regexp.MustCompile(`(?:花了|花费|用去|支出|收入|收款|入账|付|交)\s*(\d+(?:\.\d+)?)`)
	bareAmount     = regexp.MustCompile(`\d+(?:\.\d+)?`)
	noteVerbs      = regexp.MustCompile(`花了|花费|用去|买|去|支出|收入|坐|做`)
	noteUnits      = regexp.MustCompile(`元|块|钱`)
	notePunct      = regexp.MustCompile(`[，。！？,.!?]`)
)

var incomeMarkers = []string{"收", "赚", "工资", "奖金", "红包"}

// keywordTable maps spoken keywords to category labels. It is an
// ordered list, not a map: the longest matching key wins and equal
// lengths fall back to declaration order.
var keywordTable = []struct {
	key      string
	category string
}{
	{"饭", "餐饮"}, {"餐", "餐饮"}, {"吃", "餐饮"}, {"喝", "餐饮"},
	{"奶茶", "餐饮"}, {"零食", "餐饮"}, {"咖啡", "餐饮"}, {"外卖", "餐饮"},
	{"车", "交通"}, {"地铁", "交通"}, {"公交", "交通"}, {"打车", "交通"},
	{"油", "交通"}, {"路费", "交通"}, {"停车", "交通"},
	{"买", "菜篮子"}, {"菜", "菜篮子"}, {"超市", "菜篮子"}, {"水果", "菜篮子"}, {"零用", "菜篮子"},
	{"衣服", "服饰"}, {"鞋", "服饰"}, {"裙", "服饰"}, {"裤", "服饰"},
	{"住", "住宿"}, {"房", "住宿"}, {"酒店", "住宿"}, {"民宿", "住宿"},
	{"玩", "娱乐其他"}, {"电影", "娱乐其他"}, {"游戏", "娱乐其他"},
	{"门票", "票务"}, {"演出", "票务"},
	{"水", "水"}, {"电", "电"}, {"煤", "燃"}, {"气", "燃"},
	{"话费", "话"}, {"手机", "话"}, {"网费", "话"},
	{"收", "收入"}, {"工资", "收入"}, {"赚", "收入"}, {"利息", "收入"},
	{"奖金", "收入"}, {"红包", "收入"},
}

// Parse extracts a draft transaction from an already-normalized
// transcript. It never fails; fields it cannot detect stay unset.
func Parse(text string) Draft {
	var d Draft
	working := text

	for _, m := range dayMarkers {
		if strings.Contains(working, m.word) {
			offset := m.offset
			d.DateOffset = &offset
			working = strings.Replace(working, m.word, "", 1)
			break
		}
	}

	// Amount, three tiers: number+currency-unit, verb+number, bare
	// number. The first tier strips the whole phrase; the others strip
	// only the number (leftover verbs go in the cleanup below).
	if m := currencyAmount.FindStringSubmatch(working); m != nil {
		d.Amount = m[1]
		working = strings.Replace(working, m[0], "", 1)
	} else if m := verbAmount.FindStringSubmatch(working); m != nil {
		d.Amount = m[1]
		working = strings.Replace(working, m[1], "", 1)
	} else if m := bareAmount.FindString(working); m != "" {
		d.Amount = m
		working = strings.Replace(working, m, "", 1)
	}

	working = noteVerbs.ReplaceAllString(working, "")
	working = noteUnits.ReplaceAllString(working, "")
	working = notePunct.ReplaceAllString(working, " ")
	d.Note = strings.TrimSpace(working)

	// Category and type, scanned over the full normalized text so that
	// stripped verbs still count. Income markers take precedence.
	for _, marker := range incomeMarkers {
		if strings.Contains(text, marker) {
			d.Type = core.Income
			d.Category = category.IncomeCategory.Label
			return d
		}
	}
	best := 0
	for _, kw := range keywordTable {
		if n := utf8.RuneCountInString(kw.key); n > best && strings.Contains(text, kw.key) {
			best = n
			d.Category = kw.category
		}
	}
	if d.Category != "" {
		d.Type = core.Expense
	}
	return d
}
