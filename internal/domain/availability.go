package domain

import "time"

// TimeSet holds the selected quarter-hour slots of one date, keyed by
// TimeKey ("H:MM", hour unpadded, minutes 00/15/30/45).
type TimeSet map[string]struct{}

// WeeklyAvailability maps DateKey ("YYYY-MM-DD") to the slots selected on
// that date. A date that has been touched always maps to a non-nil set; an
// absent date reads as empty. The map accumulates across every week the
// provider has visited, not just the displayed one.
type WeeklyAvailability map[string]TimeSet

// Run is a maximal sequence of selected slots 15 minutes apart with no gap.
// End is the last TimeKey of the run, not an exclusive boundary.
type Run struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ExportEvent is the transient record handed to the export formatters: one
// contiguous run on one date, End already pushed 15 minutes past the last
// slot (so a run ending at 23:45 ends at midnight of the next day).
type ExportEvent struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
