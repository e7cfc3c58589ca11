package calendar

import (
	"Recipe-Book-Backend/domain"
	"errors"
	"testing"
	"time"
)

func TestWeekStartIsSunday(t *testing.T) {
	cases := []struct {
		day  string
		want string
	}{
		{"2026-08-30", "2026-08-30"}, // already a Sunday
		{"2026-08-31", "2026-08-30"}, // Monday
		{"2026-09-05", "2026-08-30"}, // Saturday
		{"2026-09-06", "2026-09-06"}, // next Sunday
	}

	for _, tc := range cases {
		day, err := parseDay(tc.day)
		if err != nil {
			t.Fatalf("parseDay(%q): %v", tc.day, err)
		}
		if got := weekStart(day).Format(dayLayout); got != tc.want {
			t.Errorf("weekStart(%s) = %s, want %s", tc.day, got, tc.want)
		}
	}
}

func TestParseDayRejectsBadInput(t *testing.T) {
	for _, bad := range []string{"", "tomorrow", "2026-13-01", "08/30/2026"} {
		if _, err := parseDay(bad); !errors.Is(err, domain.ErrInvalidDay) {
			t.Errorf("parseDay(%q) err = %v, want ErrInvalidDay", bad, err)
		}
	}
}

func TestParseRange(t *testing.T) {
	from, to, err := parseRange("2026-08-30", "2026-09-05")
	if err != nil {
		t.Fatalf("parseRange: %v", err)
	}
	if to.Sub(from) != 6*24*time.Hour {
		t.Errorf("range spans %v, want 6 days", to.Sub(from))
	}

	if _, _, err := parseRange("2026-09-05", "2026-08-30"); !errors.Is(err, domain.ErrInvalidRange) {
		t.Errorf("reversed range err = %v, want ErrInvalidRange", err)
	}
}
