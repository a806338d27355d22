package dbtime

import (
	"testing"
	"time"
)

func TestWeekOfDateMatchesISO8601(t *testing.T) {
	cases := []struct {
		date       string
		week, year int
	}{
		{"2024-01-01", 1, 2024},  // Monday
		{"2023-01-01", 52, 2022}, // Sunday, belongs to previous ISO year
		{"2024-03-04", 10, 2024},
		{"2020-12-31", 53, 2020},
		{"2021-01-03", 53, 2020},
		{"2019-12-30", 1, 2020}, // Monday of week 1 of 2020
		{"2026-10-19", 43, 2026},
	}
	for _, tc := range cases {
		week, year, err := WeekOfDate(tc.date)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.date, err)
		}
		if week != tc.week || year != tc.year {
			t.Errorf("%s: got week %d/%d, want %d/%d", tc.date, week, year, tc.week, tc.year)
		}
	}
}

func TestParseDateRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "04/03/2024", "2024-3-4", "2024-02-30", "2024-03-04T10:00:00"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) should fail", in)
		}
	}
}

func TestStartOfWeekIsMonday(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	cases := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2024, 3, 4, 0, 0, 0, 0, loc), "2024-03-04"},  // Monday itself
		{time.Date(2024, 3, 10, 23, 59, 0, 0, loc), "2024-03-04"}, // Sunday night
		{time.Date(2024, 3, 6, 12, 0, 0, 0, loc), "2024-03-04"},
		{time.Date(2024, 1, 2, 8, 0, 0, 0, loc), "2024-01-01"},
	}
	for _, tc := range cases {
		got := StartOfWeek(tc.now)
		if FormatDate(got) != tc.want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", tc.now, FormatDate(got), tc.want)
		}
		if got.Hour() != 0 || got.Minute() != 0 || got.Location() != loc {
			t.Errorf("StartOfWeek(%s) should be midnight in plant tz, got %s", tc.now, got)
		}
	}
}

func TestValidISOWeek(t *testing.T) {
	if !ValidISOWeek(2020, 53) {
		t.Error("2020 has 53 ISO weeks")
	}
	if ValidISOWeek(2024, 53) {
		t.Error("2024 has 52 ISO weeks")
	}
	if ValidISOWeek(2024, 0) {
		t.Error("week 0 is invalid")
	}
}
