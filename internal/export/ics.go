package export

import (
	"io"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

const icsProductID = "-//Therapprove//Availability Scheduler//EN"

// WriteICS renders the events as a VCALENDAR download. Timing fields are
// deterministic for a given input; the UID is freshly randomized on every
// call so repeated imports do not collide.
func WriteICS(w io.Writer, events []domain.ExportEvent) error {
	cal := buildCalendar(events)
	_, err := io.WriteString(w, cal.Serialize(ics.WithNewLineUnix))
	return err
}

// RenderICS returns the calendar as a string, for the email export path.
func RenderICS(events []domain.ExportEvent) string {
	return buildCalendar(events).Serialize(ics.WithNewLineUnix)
}

func buildCalendar(events []domain.ExportEvent) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetCalscale("GREGORIAN")

	for _, ev := range events {
		event := cal.AddEvent(uuid.NewString() + "@therapprove.com")
		event.SetStartAt(ev.Start)
		event.SetEndAt(ev.End)
		event.SetSummary("Available")
		event.SetDescription("Therapprove Availability")
		event.SetStatus(ics.ObjectStatusConfirmed)
		event.SetProperty(ics.ComponentPropertySequence, "0")
	}
	return cal
}
