package availability

import (
	"slices"
	"testing"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

func TestToggleParity(t *testing.T) {
	avail := domain.WeeklyAvailability{}

	for i := 1; i <= 5; i++ {
		Toggle(avail, "2025-01-06", "9:00")
		want := i%2 == 1
		if got := IsSelected(avail, "2025-01-06", "9:00"); got != want {
			t.Fatalf("after %d toggles selected = %v, want %v", i, got, want)
		}
	}
}

func TestToggleLazilyCreatesSet(t *testing.T) {
	avail := domain.WeeklyAvailability{}
	Toggle(avail, "2025-01-06", "9:00")
	Toggle(avail, "2025-01-06", "9:00")

	set, ok := avail["2025-01-06"]
	if !ok || set == nil {
		t.Fatal("a touched date must keep a non-nil set, even when empty")
	}
	if len(set) != 0 {
		t.Fatalf("set should be empty after even toggles, has %d members", len(set))
	}
}

func TestCopyPasteNoAliasing(t *testing.T) {
	avail := domain.WeeklyAvailability{}
	Toggle(avail, "2025-01-06", "9:00")
	Toggle(avail, "2025-01-06", "9:15")

	snapshot := Copy(avail, "2025-01-06")
	if !slices.Equal(snapshot, []string{"9:00", "9:15"}) {
		t.Fatalf("snapshot = %v", snapshot)
	}

	// Mutating the source after the copy must not change the snapshot.
	Toggle(avail, "2025-01-06", "9:30")
	Clear(avail, "2025-01-06")
	if !slices.Equal(snapshot, []string{"9:00", "9:15"}) {
		t.Fatalf("snapshot changed after source mutation: %v", snapshot)
	}

	Paste(avail, "2025-01-07", snapshot)
	if !IsSelected(avail, "2025-01-07", "9:00") || !IsSelected(avail, "2025-01-07", "9:15") {
		t.Fatal("paste did not reproduce the snapshot")
	}

	// Nor must mutating the pasted date reach back into the snapshot.
	Toggle(avail, "2025-01-07", "9:00")
	if !slices.Equal(snapshot, []string{"9:00", "9:15"}) {
		t.Fatalf("snapshot changed after target mutation: %v", snapshot)
	}
}

func TestPasteReplacesInsteadOfMerging(t *testing.T) {
	avail := domain.WeeklyAvailability{}
	Toggle(avail, "2025-01-07", "14:00")

	Paste(avail, "2025-01-07", []string{"9:00"})
	if IsSelected(avail, "2025-01-07", "14:00") {
		t.Fatal("paste must discard previous selections")
	}
	if !IsSelected(avail, "2025-01-07", "9:00") {
		t.Fatal("paste must install the snapshot")
	}
}

func TestCopyUnseenDateIsEmpty(t *testing.T) {
	avail := domain.WeeklyAvailability{}
	if got := Copy(avail, "2025-01-06"); len(got) != 0 {
		t.Fatalf("copy of unseen date = %v, want empty", got)
	}
	if _, touched := avail["2025-01-06"]; touched {
		t.Fatal("copy must not touch the date")
	}
}

func TestClear(t *testing.T) {
	avail := domain.WeeklyAvailability{}

	// No-op on a never-seen date.
	Clear(avail, "2025-01-06")
	if _, touched := avail["2025-01-06"]; touched {
		t.Fatal("clear of an unseen date must not create it")
	}

	Toggle(avail, "2025-01-06", "9:00")
	Clear(avail, "2025-01-06")
	set, ok := avail["2025-01-06"]
	if !ok || set == nil {
		t.Fatal("cleared date must keep a non-nil empty set")
	}
	if len(set) != 0 {
		t.Fatal("clear must remove all selections")
	}
}

func TestTotalSelected(t *testing.T) {
	avail := domain.WeeklyAvailability{}
	if TotalSelected(avail) != 0 {
		t.Fatal("empty mapping should count zero")
	}

	Toggle(avail, "2025-01-06", "9:00")
	Toggle(avail, "2025-01-06", "9:15")
	Toggle(avail, "2025-02-14", "12:00") // different week: still counted
	if got := TotalSelected(avail); got != 3 {
		t.Fatalf("TotalSelected = %d, want 3", got)
	}
}

func TestSortedKeysNumericOrder(t *testing.T) {
	set := domain.TimeSet{"10:00": {}, "2:00": {}, "9:45": {}}
	got := SortedKeys(set)
	want := []string{"2:00", "9:45", "10:00"}
	if !slices.Equal(got, want) {
		t.Fatalf("SortedKeys = %v, want %v", got, want)
	}
}

func TestCopyAllIsDeep(t *testing.T) {
	avail := domain.WeeklyAvailability{}
	Toggle(avail, "2025-01-06", "9:00")

	snap := CopyAll(avail)
	Toggle(avail, "2025-01-06", "9:15")
	if IsSelected(snap, "2025-01-06", "9:15") {
		t.Fatal("snapshot observed later mutation")
	}
}
