package voice

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"二百三十四", "234"},
		{"十五", "15"},
		{"十", "10"},
		{"三十", "30"},
		{"五千", "5000"},
		{"三百五", "350"}, // trailing digit after 百 means tens
		{"一百零五", "105"},
		{"二百四十", "240"},
		{"两百", "200"}, // informal two
		{"123", "123"}, // digits pass through
		{"花了二十三块奶茶", "花了23块奶茶"},
		{"", ""},
		{"没有数字", "没有数字"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSingleNumerals(t *testing.T) {
	// Leftover numerals become lone digits even when they do not form a
	// quantity; best effort, never an error.
	if got := Normalize("三个苹果"); got != "3个苹果" {
		t.Fatalf("got %q", got)
	}
	if got := Normalize("零"); got != "0" {
		t.Fatalf("got %q", got)
	}
}
