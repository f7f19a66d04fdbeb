package availability

import (
	"testing"
	"time"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

func TestApplyTemplateBusinessHours(t *testing.T) {
	anchor := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	avail := domain.WeeklyAvailability{}
	Toggle(avail, "2025-01-06", "22:00") // replaced, not merged

	if err := ApplyTemplate(avail, anchor, "2025-01-06", TemplateBusiness); err != nil {
		t.Fatal(err)
	}

	// 9:00 through 16:45 inclusive: 8 hours x 4 quarters.
	if got := len(avail["2025-01-06"]); got != 32 {
		t.Fatalf("business hours filled %d slots, want 32", got)
	}
	if !IsSelected(avail, "2025-01-06", "9:00") || !IsSelected(avail, "2025-01-06", "16:45") {
		t.Fatal("business hours boundaries missing")
	}
	if IsSelected(avail, "2025-01-06", "17:00") || IsSelected(avail, "2025-01-06", "8:45") {
		t.Fatal("slots outside 9-17 must not be selected")
	}
	if IsSelected(avail, "2025-01-06", "22:00") {
		t.Fatal("template must replace previous selections")
	}
}

func TestApplyTemplateWeekendPattern(t *testing.T) {
	anchor := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC) // Sunday

	avail := domain.WeeklyAvailability{}
	// Passed dateKey is ignored: the pattern lands on the week's Saturday
	// and Sunday.
	if err := ApplyTemplate(avail, anchor, "2025-01-07", TemplateWeekend); err != nil {
		t.Fatal(err)
	}

	if _, touched := avail["2025-01-07"]; touched {
		t.Fatal("weekend pattern must not touch the requested weekday")
	}
	if got := len(avail["2025-01-11"]); got != 24 { // Saturday 10-16
		t.Fatalf("saturday slots = %d, want 24", got)
	}
	if got := len(avail["2025-01-05"]); got != 24 { // Sunday 12-18
		t.Fatalf("sunday slots = %d, want 24", got)
	}
	if !IsSelected(avail, "2025-01-11", "10:00") || !IsSelected(avail, "2025-01-05", "17:45") {
		t.Fatal("weekend boundaries missing")
	}
}

func TestApplyTemplateUnknown(t *testing.T) {
	anchor := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	if err := ApplyTemplate(domain.WeeklyAvailability{}, anchor, "2025-01-06", "lunch-hours"); err == nil {
		t.Fatal("expected an error for an unknown template")
	}
}
