package utils

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"16:30", 990},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if err != nil {
			t.Errorf("ParseClock(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
		if back := FormatClock(got); back != tc.in {
			t.Errorf("FormatClock(%d) = %q, want %q", got, back, tc.in)
		}
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "noon", "24:00", "12:60", "-1:30"} {
		if _, err := ParseClock(in); err == nil {
			t.Errorf("ParseClock(%q) accepted malformed input", in)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2026-09-07") {
		t.Error("ValidDate rejected a well-formed date")
	}
	for _, in := range []string{"07/09/2026", "2026-13-01", "2026-02-30", "today"} {
		if ValidDate(in) {
			t.Errorf("ValidDate(%q) accepted malformed input", in)
		}
	}
}
