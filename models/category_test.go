package models

import "testing"

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{"food", CategoryFood},
		{"transportation", CategoryTransportation},
		{"health", CategoryHealth},
		{"", CategoryOther},
		{"Food", CategoryOther},   // exact match only
		{"crypto", CategoryOther}, // unknown label
	}
	for _, tc := range cases {
		if got := ParseCategory(tc.in); got != tc.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(string(c)) {
			t.Errorf("%q should be a valid category", c)
		}
	}
	for _, in := range []string{"", "Food", "crypto"} {
		if ValidCategory(in) {
			t.Errorf("%q should not be a valid category", in)
		}
	}
}

func TestValidIncomeSource(t *testing.T) {
	if !ValidIncomeSource("salary") {
		t.Error("salary should be a valid income source")
	}
	if ValidIncomeSource("lottery") {
		t.Error("lottery should not be a valid income source")
	}
}
