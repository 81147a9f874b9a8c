package ordersplitter

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestProperty_NextMarketOpenAlwaysWeekdayAtOpen(t *testing.T) {
	min := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	max := time.Date(2040, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

	rapid.Check(t, func(t *rapid.T) {
		now := time.Unix(rapid.Int64Range(min, max).Draw(t, "now"), 0).UTC()

		open := NextMarketOpen(now)

		switch open.Weekday() {
		case time.Saturday, time.Sunday:
			t.Fatalf("NextMarketOpen(%s) landed on %s", now, open.Weekday())
		}

		if open.Hour() != 14 || open.Minute() != 30 || open.Second() != 0 || open.Nanosecond() != 0 {
			t.Fatalf("NextMarketOpen(%s) = %s, not at 14:30:00.000 UTC", now, open)
		}

		if open.Location() != time.UTC {
			t.Fatalf("NextMarketOpen(%s) not in UTC", now)
		}

		// The scheduled open never lies more than 4 calendar days ahead
		// (Friday-past-cutoff is the worst case).
		if open.After(now.AddDate(0, 0, 4)) {
			t.Fatalf("NextMarketOpen(%s) = %s is too far ahead", now, open)
		}
	})
}
