package availability

import (
	"fmt"
	"time"
)

// StartOfWeek returns the Sunday midnight beginning the week that contains
// t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	d := t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// DateForDay returns the date at the given day offset (0-6) from the week
// anchor.
func DateForDay(anchor time.Time, offset int) time.Time {
	return anchor.AddDate(0, 0, offset)
}

// DateKeyForDay resolves an anchor plus day offset to its DateKey.
func DateKeyForDay(anchor time.Time, offset int) string {
	return DateKey(DateForDay(anchor, offset))
}

// WeekLabel renders the anchored week as "Week N, YYYY" (ISO week number).
func WeekLabel(anchor time.Time) string {
	year, week := anchor.ISOWeek()
	return fmt.Sprintf("Week %d, %d", week, year)
}

// WeekRangeLabel renders the anchored week as "Jan 5 – Jan 11".
func WeekRangeLabel(anchor time.Time) string {
	return fmt.Sprintf("%s – %s", anchor.Format("Jan 2"), DateForDay(anchor, 6).Format("Jan 2"))
}
