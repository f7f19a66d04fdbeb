package availability

import (
	"fmt"
	"time"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

// Template names match the cards of the suggestion dialog in the provider
// UI.
const (
	TemplateMorning   = "morning-hours"
	TemplateAfternoon = "afternoon-hours"
	TemplateEvening   = "evening-hours"
	TemplateBusiness  = "business-hours"
	TemplateWeekend   = "weekend-pattern"
	TemplateCustom    = "custom-pattern"
)

// ApplyTemplate replaces the date's selections with the named pattern. The
// weekend pattern ignores dateKey and fills Saturday and Sunday of the
// anchored week instead. The custom pattern is deferred behind a simulated
// analysis delay and is handled by Session.ScheduleCustomPattern, never
// here.
func ApplyTemplate(avail domain.WeeklyAvailability, anchor time.Time, dateKey, template string) error {
	switch template {
	case TemplateMorning:
		applyHourRange(avail, dateKey, 6, 12)
	case TemplateAfternoon:
		applyHourRange(avail, dateKey, 12, 17)
	case TemplateEvening:
		applyHourRange(avail, dateKey, 17, 22)
	case TemplateBusiness:
		applyHourRange(avail, dateKey, 9, 17)
	case TemplateWeekend:
		applyHourRange(avail, DateKeyForDay(anchor, 6), 10, 16)
		applyHourRange(avail, DateKeyForDay(anchor, 0), 12, 18)
	default:
		return fmt.Errorf("unknown template %q", template)
	}
	return nil
}

// TemplateLabel renders the template name for notifications, e.g.
// "Morning Hours".
func TemplateLabel(template string) string {
	switch template {
	case TemplateMorning:
		return "Morning Hours"
	case TemplateAfternoon:
		return "Afternoon Hours"
	case TemplateEvening:
		return "Evening Hours"
	case TemplateBusiness:
		return "Business Hours"
	case TemplateWeekend:
		return "Weekend Pattern"
	case TemplateCustom:
		return "Custom Pattern"
	}
	return template
}

func applyHourRange(avail domain.WeeklyAvailability, dateKey string, fromHour, toHour int) {
	set := domain.TimeSet{}
	for h := fromHour; h < toHour; h++ {
		for q := 0; q < 4; q++ {
			set[TimeKey(h, q)] = struct{}{}
		}
	}
	avail[dateKey] = set
}

// applyCustomPattern overwrites the date with the alternating-hours pattern
// (every other hour between 8:00 and 20:00).
func applyCustomPattern(avail domain.WeeklyAvailability, dateKey string) {
	set := domain.TimeSet{}
	for h := 8; h < 20; h += 2 {
		for q := 0; q < 4; q++ {
			set[TimeKey(h, q)] = struct{}{}
		}
	}
	avail[dateKey] = set
}
