// Package voice turns a recognized speech transcript into a draft
// transaction: Chinese numeral phrases become digits, then ordered
// pattern rules pull out date, amount, category and note.
package voice

import (
	"regexp"
	"strconv"
	"strings"
)

var digits = map[rune]int64{
	'零': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

func digit(s string) int64 {
	r := []rune(s)
	return digits[r[0]]
}

// numeralRule rewrites one Chinese numeral pattern into digits. Rules
// run once each, in declaration order; longer patterns come first so
// overlapping shorter ones never see their text. Converted digits are
// never re-examined since the patterns match only numeral words.
type numeralRule struct {
	re      *regexp.Regexp
	rewrite func(groups []string) int64
}

var numeralRules = []numeralRule{
	{regexp.MustCompile(`([一二三四五六七八九])千`), func(g []string) int64 {
		return digit(g[1]) * 1000
	}},
	{regexp.MustCompile(`([一二三四五六七八九])百([一二三四五六七八九])十([一二三四五六七八九])`), func(g []string) int64 {
		return digit(g[1])*100 + digit(g[2])*10 + digit(g[3])
	}},
	{regexp.MustCompile(`([一二三四五六七八九])百([一二三四五六七八九])十`), func(g []string) int64 {
		return digit(g[1])*100 + digit(g[2])*10
	}},
	{regexp.MustCompile(`([一二三四五六七八九])百零([一二三四五六七八九])`), func(g []string) int64 {
		return digit(g[1])*100 + digit(g[2])
	}},
	// Trailing digit after 百 means tens: 三百五 is 350. Safe without a
	// lookahead because every 百…十 form was consumed above.
	{regexp.MustCompile(`([一二三四五六七八九])百([一二三四五六七八九])`), func(g []string) int64 {
		return digit(g[1])*100 + digit(g[2])*10
	}},
	{regexp.MustCompile(`([一二三四五六七八九])百`), func(g []string) int64 {
		return digit(g[1]) * 100
	}},
	{regexp.MustCompile(`([一二三四五六七八九])十([一二三四五六七八九])`), func(g []string) int64 {
		return digit(g[1])*10 + digit(g[2])
	}},
	{regexp.MustCompile(`([一二三四五六七八九])十`), func(g []string) int64 {
		return digit(g[1]) * 10
	}},
	{regexp.MustCompile(`十([一二三四五六七八九])`), func(g []string) int64 {
		return 10 + digit(g[1])
	}},
}

var (
	bareTen       = regexp.MustCompile(`十`)
	singleNumeral = regexp.MustCompile(`[零一二三四五六七八九]`)
)

// Normalize replaces spoken Chinese numeral phrases with Arabic digit
// strings and passes everything else through unchanged. Malformed or
// already-numeric input comes back as-is; there is no error path.
func Normalize(text string) string {
	t := strings.ReplaceAll(text, "两", "二")
	for _, rule := range numeralRules {
		t = rule.re.ReplaceAllStringFunc(t, func(m string) string {
			groups := rule.re.FindStringSubmatch(m)
			return strconv.FormatInt(rule.rewrite(groups), 10)
		})
	}
	t = bareTen.ReplaceAllString(t, "10")
	return singleNumeral.ReplaceAllStringFunc(t, func(m string) string {
		return strconv.FormatInt(digit(m), 10)
	})
}
