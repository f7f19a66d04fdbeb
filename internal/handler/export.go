package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/therapprove/provider-portal/backend/internal/availability"
	"github.com/therapprove/provider-portal/backend/internal/domain"
	"github.com/therapprove/provider-portal/backend/internal/export"
)

func (h *Handler) weekEvents(sess *availability.Session) []domain.ExportEvent {
	return availability.BuildWeekEvents(sess.Snapshot(), sess.Anchor())
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="therapprove-availability.csv"`)

	if err := export.WriteCSV(w, h.weekEvents(sess)); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="therapprove-availability.ics"`)

	if err := export.WriteICS(w, h.weekEvents(sess)); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	w.Header().Set("Content-Type", "application/vnd.ms-excel")
	w.Header().Set("Content-Disposition", `attachment; filename="therapprove-availability.xml"`)

	if err := export.WriteExcelXML(w, h.weekEvents(sess)); err != nil {
		h.logInternalServerError(r, err)
	}
}

// ExportGoogleCalendar returns a deep link instead of a file. Google's
// render endpoint takes a limited number of dates pairs, so long weeks get
// truncated with a notice.
func (h *Handler) ExportGoogleCalendar(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	events := h.weekEvents(sess)
	if len(events) == 0 {
		h.warningResponse(w, r, "No availability slots to export", nil)
		return
	}

	link := export.BuildGoogleCalendarURL(events)
	if link.Truncated {
		h.infoResponse(w, r, fmt.Sprintf("Exported first %d slots to Google Calendar. For more slots, please use the ICS file.", link.Exported), link)
		return
	}

	h.successResponse(w, r, "Opening Google Calendar...", link)
}

func (h *Handler) EmailExport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		To string `json:"to" validate:"required,email"`
	}

	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	if h.mailChannel == nil {
		h.errorResponse(w, r, "Email export is not available")
		return
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	events := h.weekEvents(sess)
	if len(events) == 0 {
		h.warningResponse(w, r, "No availability slots to export", nil)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "availability_export",
		To:   req.To,
		Data: domain.AvailabilityExportMailData{
			WeekLabel: availability.WeekLabel(sess.Anchor()),
			EventRows: len(events),
			Calendar:  export.RenderICS(events),
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, fmt.Sprintf("Availability calendar sent to %s", req.To), nil)
}
