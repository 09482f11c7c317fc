// Package dashboard contains dashboard-related use cases and the
// aggregation engine that derives dashboard metrics from raw records.
package dashboard

import "time"

// Time window classification. Every predicate takes the reference instant
// explicitly so callers (and tests) can pin a fixed "now".
//
// Window shapes intentionally differ: "today" and "this month" are
// calendar-aligned in now's location, while "this week" and the trend
// buckets are trailing rolling windows anchored at now. The mix matches
// what the dashboard has always displayed.

// IsToday reports whether t falls on the same calendar day as now,
// evaluated in now's location.
func IsToday(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsThisWeek reports whether t falls within the trailing 7-day window
// [now-7d, now], inclusive on both edges.
func IsThisWeek(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	start := now.AddDate(0, 0, -7)
	return !t.Before(start) && !t.After(now)
}

// IsThisMonth reports whether t falls within the calendar month containing
// now, evaluated in now's location.
func IsThisMonth(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	loc := now.Location()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	nextMonth := monthStart.AddDate(0, 1, 0)
	tt := t.In(loc)
	return !tt.Before(monthStart) && tt.Before(nextMonth)
}

// InWeekBucket reports whether t falls in trailing week bucket weeksAgo
// (0 = most recent). Bucket i covers [now-(i+1)*7d, now-i*7d): four
// contiguous, non-overlapping 7-day windows tiling backward from now.
//
// Boundary policy: a record exactly on a bucket boundary belongs to the
// more recent bucket (lower edge inclusive, upper edge exclusive). The
// one exception is the upper edge of bucket 0, which includes now itself
// so a record created at the reference instant is never dropped.
func InWeekBucket(t, now time.Time, weeksAgo int) bool {
	if t.IsZero() || weeksAgo < 0 {
		return false
	}
	upper := now.AddDate(0, 0, -7*weeksAgo)
	lower := now.AddDate(0, 0, -7*(weeksAgo+1))
	if t.Before(lower) {
		return false
	}
	if weeksAgo == 0 {
		return !t.After(upper)
	}
	return t.Before(upper)
}
