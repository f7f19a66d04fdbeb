package export

import (
	"fmt"
	"io"
	"time"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

// CSVHeader is fixed; calendar importers key on these exact column names.
const CSVHeader = "Subject,Start Date,Start Time,End Date,End Time,All Day Event"

// WriteCSV writes one row per event in the Outlook/Google CSV import
// layout. An empty event list yields the header alone.
func WriteCSV(w io.Writer, events []domain.ExportEvent) error {
	if _, err := fmt.Fprintln(w, CSVHeader); err != nil {
		return err
	}
	for _, ev := range events {
		_, err := fmt.Fprintf(w, "\"Available\",%s,%s,%s,%s,FALSE\n",
			exportDate(ev.Start), clockTime(ev.Start), exportDate(ev.End), clockTime(ev.End))
		if err != nil {
			return err
		}
	}
	return nil
}

// exportDate formats MM/DD/YYYY.
func exportDate(t time.Time) string {
	return t.Format("01/02/2006")
}

// clockTime formats "H:MM AM" with an unpadded hour, matching the slot
// grid's display format.
func clockTime(t time.Time) string {
	return t.Format("3:04 PM")
}
