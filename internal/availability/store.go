package availability

import (
	"slices"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

// Toggle flips the selection state of one slot, lazily creating the date's
// set on first touch. A touched date always maps to a non-nil set.
func Toggle(avail domain.WeeklyAvailability, dateKey, timeKey string) {
	set, ok := avail[dateKey]
	if !ok {
		set = domain.TimeSet{}
		avail[dateKey] = set
	}
	if _, selected := set[timeKey]; selected {
		delete(set, timeKey)
	} else {
		set[timeKey] = struct{}{}
	}
}

// Copy returns an independent snapshot of the date's selections, sorted by
// time of day. Later mutation of the date must not reach the snapshot.
// An unseen date copies as an empty snapshot.
func Copy(avail domain.WeeklyAvailability, dateKey string) []string {
	return SortedKeys(avail[dateKey])
}

// Paste replaces the date's selections with an independent copy of the
// snapshot's members. Existing selections are discarded, not merged.
func Paste(avail domain.WeeklyAvailability, dateKey string, snapshot []string) {
	set := make(domain.TimeSet, len(snapshot))
	for _, key := range snapshot {
		set[key] = struct{}{}
	}
	avail[dateKey] = set
}

// Clear empties the date's set. A date that was never touched stays
// untouched.
func Clear(avail domain.WeeklyAvailability, dateKey string) {
	if _, ok := avail[dateKey]; ok {
		avail[dateKey] = domain.TimeSet{}
	}
}

// IsSelected reports whether the slot is selected; an absent date or slot
// both read as false.
func IsSelected(avail domain.WeeklyAvailability, dateKey, timeKey string) bool {
	_, ok := avail[dateKey][timeKey]
	return ok
}

// TotalSelected sums the selections across every date ever touched. Saving
// is refused while this is zero.
func TotalSelected(avail domain.WeeklyAvailability) int {
	total := 0
	for _, set := range avail {
		total += len(set)
	}
	return total
}

// SortedKeys returns the set's keys ordered by total minutes since
// midnight.
func SortedKeys(set domain.TimeSet) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return TimeKeyMinutes(a) - TimeKeyMinutes(b)
	})
	return keys
}

// CopyAll deep-copies the whole mapping, for exports and saves that must
// not observe later mutation.
func CopyAll(avail domain.WeeklyAvailability) domain.WeeklyAvailability {
	out := make(domain.WeeklyAvailability, len(avail))
	for dateKey, set := range avail {
		copied := make(domain.TimeSet, len(set))
		for key := range set {
			copied[key] = struct{}{}
		}
		out[dateKey] = copied
	}
	return out
}
