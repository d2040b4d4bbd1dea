package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in      string
		cents   int64
		wantErr bool
	}{
		{"23", 2300, false},
		{"23.5", 2350, false},
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"12.345", 1235, false},
		{"12.346", 1235, false},
		{"0", 0, false}, // zero parses; submission validation rejects it
		{"", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseDecimalToCents(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDecimalToCents(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.cents {
			t.Fatalf("ParseDecimalToCents(%q) = %d, want %d", tc.in, got, tc.cents)
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{2300, "23"},
		{2350, "23.5"},
		{2345, "23.45"},
		{105, "1.05"},
		{0, "0"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("Money{%d}.String() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := Money{Cents: 2350}
	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "23.5" {
		t.Fatalf("marshal = %s, want 23.5", data)
	}
	var back Money
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Cents != m.Cents {
		t.Fatalf("round trip = %d, want %d", back.Cents, m.Cents)
	}
}
