package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeKey formats a quarter-hour of day as the canonical "H:MM" key used by
// the store and the persisted blob. The hour is not zero-padded, the
// minutes are. Inputs come from the bounded 24x4 slot generator, so
// out-of-range values are a caller bug, not a checked error.
func TimeKey(hour, quarter int) string {
	return fmt.Sprintf("%d:%02d", hour, quarter*15)
}

// ParseTimeKey is the inverse of TimeKey. The hour may be unpadded.
func ParseTimeKey(key string) (hour, minute int) {
	h, m, _ := strings.Cut(key, ":")
	hour, _ = strconv.Atoi(h)
	minute, _ = strconv.Atoi(m)
	return hour, minute
}

// TimeKeyMinutes returns the key's total minutes since midnight. Every
// ordering and adjacency check uses this numeric form; comparing the raw
// strings would put "10:00" before "9:00".
func TimeKeyMinutes(key string) int {
	hour, minute := ParseTimeKey(key)
	return hour*60 + minute
}

// DateKey formats a calendar date as "YYYY-MM-DD" using the value's own
// calendar fields, without shifting to UTC.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}
