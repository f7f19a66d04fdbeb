package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

// DeepLinkEventLimit caps how many events fit in a calendar deep link. The
// transport is a URL, not a file, so anything beyond the first few events
// has to go through the ICS download instead.
const DeepLinkEventLimit = 5

const googleCalendarBase = "https://calendar.google.com/calendar/render?action=TEMPLATE"

// DeepLink is the result of building a provider-calendar URL; Truncated
// tells the caller to surface an informational notice.
type DeepLink struct {
	URL       string `json:"url"`
	Exported  int    `json:"exported"`
	Total     int    `json:"total"`
	Truncated bool   `json:"truncated"`
}

// BuildGoogleCalendarURL appends one text/dates parameter pair per event,
// keeping only the first DeepLinkEventLimit events.
func BuildGoogleCalendarURL(events []domain.ExportEvent) DeepLink {
	n := min(len(events), DeepLinkEventLimit)

	var b strings.Builder
	b.WriteString(googleCalendarBase)
	for _, ev := range events[:n] {
		fmt.Fprintf(&b, "&text=Available&dates=%s/%s", compactUTC(ev.Start), compactUTC(ev.End))
	}

	return DeepLink{
		URL:       b.String(),
		Exported:  n,
		Total:     len(events),
		Truncated: len(events) > n,
	}
}

// compactUTC is the basic-ISO timestamp both Google links and ICS use.
func compactUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}
