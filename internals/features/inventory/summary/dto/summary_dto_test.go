package dto

import "testing"

func TestCheckRange(t *testing.T) {
	cases := []struct {
		qty, min, max int
		want          string
	}{
		{5, 2, 10, ""},
		{1, 2, 10, AlertBelowMin},
		{11, 2, 10, AlertAboveMax},
		{500, 0, 0, ""},
		{2, 2, 2, ""},
	}
	for _, tc := range cases {
		if got := CheckRange(tc.qty, tc.min, tc.max); got != tc.want {
			t.Errorf("CheckRange(%d, %d, %d) = %q, want %q", tc.qty, tc.min, tc.max, got, tc.want)
		}
	}
}
