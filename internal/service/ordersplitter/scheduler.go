package ordersplitter

import "time"

const (
	marketOpenHour   = 14
	marketOpenMinute = 30

	// sameDayCutoffHour is the UTC hour past which today's open window is
	// considered over and a same-day order rolls to the next trading day.
	sameDayCutoffHour = 21
)

// NextMarketOpen returns the next instant an order can execute: weekdays at
// 14:30:00.000 UTC (09:30 local market open). Saturday requests jump to
// Monday, Sunday requests to Monday as well. A request on a weekday at or
// after 21:00 UTC rolls forward one day, or three when the candidate day is
// a Friday, landing on the following Monday.
//
// The cutoff compares the original now's hour, not the candidate's, and the
// candidate's weekday only decides the Friday jump. No holiday calendar is
// applied.
func NextMarketOpen(now time.Time) time.Time {
	now = now.UTC()

	daysAhead := 0
	switch now.Weekday() {
	case time.Saturday:
		daysAhead = 2
	case time.Sunday:
		daysAhead = 1
	}

	open := time.Date(now.Year(), now.Month(), now.Day()+daysAhead, marketOpenHour, marketOpenMinute, 0, 0, time.UTC)

	if daysAhead == 0 && now.Hour() >= sameDayCutoffHour {
		if open.Weekday() == time.Friday {
			open = open.AddDate(0, 0, 3)
		} else {
			open = open.AddDate(0, 0, 1)
		}
	}

	return open
}
