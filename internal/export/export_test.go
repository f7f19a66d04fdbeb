package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

func sampleEvents() []domain.ExportEvent {
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	return []domain.ExportEvent{
		{Start: day.Add(9 * time.Hour), End: day.Add(9*time.Hour + 30*time.Minute)},
		{Start: day.Add(14 * time.Hour), End: day.Add(15 * time.Hour)},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleEvents()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows: %q", len(lines), lines)
	}
	if lines[0] != CSVHeader {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `"Available",01/06/2025,9:00 AM,01/06/2025,9:30 AM,FALSE` {
		t.Errorf("row = %q", lines[1])
	}
	if lines[2] != `"Available",01/06/2025,2:00 PM,01/06/2025,3:00 PM,FALSE` {
		t.Errorf("row = %q", lines[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != CSVHeader {
		t.Fatalf("empty export = %q, want header only", got)
	}
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteICS(&buf, sampleEvents()); err != nil {
		t.Fatal(err)
	}
	body := buf.String()

	for _, field := range []string{
		"BEGIN:VCALENDAR",
		"METHOD:PUBLISH",
		"PRODID:-//Therapprove//Availability Scheduler//EN",
		"DTSTART:20250106T090000Z",
		"DTEND:20250106T093000Z",
		"SUMMARY:Available",
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"END:VCALENDAR",
	} {
		if !strings.Contains(body, field) {
			t.Errorf("ICS output missing %q", field)
		}
	}
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("got %d VEVENTs, want 2", got)
	}
}

func TestWriteICSRandomizesUIDOnly(t *testing.T) {
	first := RenderICS(sampleEvents())
	second := RenderICS(sampleEvents())

	if first == second {
		t.Fatal("two exports should differ in UID")
	}
	if stripUIDs(first) != stripUIDs(second) {
		t.Fatal("exports must be identical apart from UIDs")
	}
}

func stripUIDs(ics string) string {
	var kept []string
	for _, line := range strings.Split(ics, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, "UID:") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func TestWriteICSEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteICS(&buf, nil); err != nil {
		t.Fatal(err)
	}
	body := buf.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || strings.Contains(body, "BEGIN:VEVENT") {
		t.Fatalf("empty export should carry an envelope and no events: %q", body)
	}
}

func TestWriteExcelXML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExcelXML(&buf, sampleEvents()); err != nil {
		t.Fatal(err)
	}
	body := buf.String()

	if !strings.HasPrefix(body, "<?xml version=\"1.0\"?>") {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(body, "<Worksheet ss:Name=\"Availability\">") {
		t.Error("missing worksheet")
	}
	// Header row + 2 data rows.
	if got := strings.Count(body, "<Row>"); got != 3 {
		t.Errorf("got %d rows, want 3", got)
	}
	if !strings.Contains(body, ">9:00 AM<") || !strings.Contains(body, ">01/06/2025<") {
		t.Error("data cells missing")
	}
}

func TestWriteExcelXMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExcelXML(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "<Row>"); got != 1 {
		t.Fatalf("empty export has %d rows, want header row only", got)
	}
}

func TestBuildGoogleCalendarURL(t *testing.T) {
	link := BuildGoogleCalendarURL(sampleEvents())

	if link.Truncated || link.Exported != 2 || link.Total != 2 {
		t.Fatalf("link meta = %+v", link)
	}
	if !strings.HasPrefix(link.URL, googleCalendarBase) {
		t.Errorf("URL = %q", link.URL)
	}
	if !strings.Contains(link.URL, "&text=Available&dates=20250106T090000Z/20250106T093000Z") {
		t.Errorf("URL missing first pair: %q", link.URL)
	}
}

func TestBuildGoogleCalendarURLTruncates(t *testing.T) {
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	var events []domain.ExportEvent
	for i := 0; i < 8; i++ {
		start := day.Add(time.Duration(8+i) * time.Hour)
		events = append(events, domain.ExportEvent{Start: start, End: start.Add(15 * time.Minute)})
	}

	link := BuildGoogleCalendarURL(events)
	if !link.Truncated || link.Exported != DeepLinkEventLimit || link.Total != 8 {
		t.Fatalf("link meta = %+v", link)
	}
	if got := strings.Count(link.URL, "&text=Available"); got != DeepLinkEventLimit {
		t.Fatalf("URL carries %d events, want %d", got, DeepLinkEventLimit)
	}
}
