package availability

import (
	"time"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

// GroupRuns partitions one date's selections into maximal runs of
// consecutive quarter-hours, ordered by time of day. Two keys belong to the
// same run iff their total minutes differ by exactly 15. The emitted End is
// the run's last key, not an exclusive boundary.
func GroupRuns(set domain.TimeSet) []domain.Run {
	keys := SortedKeys(set)
	if len(keys) == 0 {
		return nil
	}

	var runs []domain.Run
	current := domain.Run{Start: keys[0], End: keys[0]}
	for _, key := range keys[1:] {
		if TimeKeyMinutes(key)-TimeKeyMinutes(current.End) == 15 {
			current.End = key
			continue
		}
		runs = append(runs, current)
		current = domain.Run{Start: key, End: key}
	}
	return append(runs, current)
}

// BuildWeekEvents is the shared pre-step of every exporter: group each of
// the anchored week's 7 dates and emit one event per run. Dates with no
// selections are skipped. The event end is the last slot's start plus 15
// minutes, so a run ending at 23:45 ends at midnight of the next day.
func BuildWeekEvents(avail domain.WeeklyAvailability, anchor time.Time) []domain.ExportEvent {
	var events []domain.ExportEvent
	for offset := 0; offset < 7; offset++ {
		date := DateForDay(anchor, offset)
		set := avail[DateKey(date)]
		if len(set) == 0 {
			continue
		}
		for _, run := range GroupRuns(set) {
			startHour, startMinute := ParseTimeKey(run.Start)
			endHour, endMinute := ParseTimeKey(run.End)
			start := time.Date(date.Year(), date.Month(), date.Day(), startHour, startMinute, 0, 0, date.Location())
			end := time.Date(date.Year(), date.Month(), date.Day(), endHour, endMinute, 0, 0, date.Location()).Add(15 * time.Minute)
			events = append(events, domain.ExportEvent{Start: start, End: end})
		}
	}
	return events
}
