package domain

import "time"

// Rollover zeroes daily and weekly counters whose stored calendar key no
// longer matches now. It runs lazily at the head of every ledger operation
// instead of on a background timer, so boundary behavior is testable with a
// fake clock. Reports whether anything changed.
func (l *Ledger) Rollover(now time.Time) bool {
	changed := false

	today := DateKey(now)
	if l.Daily.Date != "" && l.Daily.Date != today {
		l.Daily = DailyStats{Date: today}
		changed = true
	}

	year, week := now.ISOWeek()
	hasWeek := l.Weekly.Year != 0 || l.Weekly.Week != 0
	if hasWeek && (l.Weekly.Year != year || l.Weekly.Week != week) {
		l.Weekly = WeeklyStats{Year: year, Week: week}
		changed = true
	}
	return changed
}
