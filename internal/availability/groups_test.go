package availability

import (
	"testing"
	"time"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

func TestGroupRuns(t *testing.T) {
	set := domain.TimeSet{"9:00": {}, "9:15": {}, "9:30": {}, "10:00": {}}
	runs := GroupRuns(set)

	want := []domain.Run{
		{Start: "9:00", End: "9:30"},
		{Start: "10:00", End: "10:00"},
	}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, want %d: %v", len(runs), len(want), runs)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestGroupRunsEmptySet(t *testing.T) {
	if runs := GroupRuns(domain.TimeSet{}); len(runs) != 0 {
		t.Fatalf("empty set grouped to %v", runs)
	}
	if runs := GroupRuns(nil); len(runs) != 0 {
		t.Fatalf("nil set grouped to %v", runs)
	}
}

func TestGroupRunsSingleKey(t *testing.T) {
	runs := GroupRuns(domain.TimeSet{"23:45": {}})
	if len(runs) != 1 || runs[0] != (domain.Run{Start: "23:45", End: "23:45"}) {
		t.Fatalf("runs = %v", runs)
	}
}

func TestGroupRunsNumericNotLexicographic(t *testing.T) {
	// "2:00" must come before "10:00" even though it sorts after it as a
	// string.
	runs := GroupRuns(domain.TimeSet{"10:00": {}, "2:00": {}})
	if len(runs) != 2 {
		t.Fatalf("got %d runs", len(runs))
	}
	if runs[0].Start != "2:00" || runs[1].Start != "10:00" {
		t.Fatalf("chronological order violated: %v", runs)
	}
}

func TestBuildWeekEvents(t *testing.T) {
	anchor := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC) // Sunday

	avail := domain.WeeklyAvailability{}
	Toggle(avail, "2025-01-06", "9:00") // Monday
	Toggle(avail, "2025-01-06", "9:15")
	Toggle(avail, "2025-01-06", "11:00")
	Toggle(avail, "2025-01-08", "14:30")                    // Wednesday
	Toggle(avail, "2025-01-20", "8:00")                     // outside the week: skipped
	avail["2025-01-07"] = domain.TimeSet{} // touched but empty: skipped

	events := BuildWeekEvents(avail, anchor)
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3: %v", len(events), events)
	}

	// 9:00–9:15 run exports as 9:00–9:30.
	if got := events[0].Start; !got.Equal(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("first start = %s", got)
	}
	if got := events[0].End; !got.Equal(time.Date(2025, 1, 6, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("first end = %s", got)
	}
	if got := events[1].End; !got.Equal(time.Date(2025, 1, 6, 11, 15, 0, 0, time.UTC)) {
		t.Errorf("second end = %s", got)
	}
	if got := events[2].Start; !got.Equal(time.Date(2025, 1, 8, 14, 30, 0, 0, time.UTC)) {
		t.Errorf("third start = %s", got)
	}
}

func TestBuildWeekEventsMidnightRollover(t *testing.T) {
	anchor := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	avail := domain.WeeklyAvailability{}
	Toggle(avail, "2025-01-10", "23:45") // Friday, last slot of the day

	events := BuildWeekEvents(avail, anchor)
	if len(events) != 1 {
		t.Fatalf("got %d events", len(events))
	}
	// 23:45 + 15min crosses into Saturday 0:00.
	wantEnd := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	if !events[0].End.Equal(wantEnd) {
		t.Fatalf("end = %s, want %s", events[0].End, wantEnd)
	}
}

func TestBuildWeekEventsEmptyWeek(t *testing.T) {
	anchor := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	if events := BuildWeekEvents(domain.WeeklyAvailability{}, anchor); len(events) != 0 {
		t.Fatalf("events = %v, want none", events)
	}
}
