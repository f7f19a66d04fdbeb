package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/therapprove/provider-portal/backend/internal/availability"
	"github.com/therapprove/provider-portal/backend/internal/utils"
)

type weekDay struct {
	DateKey string   `json:"dateKey"`
	Weekday string   `json:"weekday"`
	Label   string   `json:"label"`
	Slots   []string `json:"slots"`
}

// GetWeekAvailability renders the displayed week: one entry per day with
// its selected slots in chronological order.
func (h *Handler) GetWeekAvailability(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	anchor := sess.Anchor()
	snapshot := sess.Snapshot()

	days := make([]weekDay, 0, 7)
	for offset := 0; offset < 7; offset++ {
		date := availability.DateForDay(anchor, offset)
		dateKey := availability.DateKey(date)

		slots := availability.SortedKeys(snapshot[dateKey])
		if slots == nil {
			slots = []string{}
		}
		days = append(days, weekDay{
			DateKey: dateKey,
			Weekday: date.Weekday().String(),
			Label:   date.Format("Jan 2"),
			Slots:   slots,
		})
	}

	h.successResponse(w, r, "", map[string]any{
		"weekLabel":     availability.WeekLabel(anchor),
		"weekRange":     availability.WeekRangeLabel(anchor),
		"days":          days,
		"totalSelected": sess.TotalSelected(),
	})
}

func (h *Handler) AdvanceWeek(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DeltaWeeks int `json:"deltaWeeks" validate:"required"`
	}

	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	anchor := sess.Advance(req.DeltaWeeks)

	h.successResponse(w, r, "", map[string]any{
		"weekLabel": availability.WeekLabel(anchor),
		"weekRange": availability.WeekRangeLabel(anchor),
	})
}

func (h *Handler) ToggleSlot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DateKey string `json:"dateKey" validate:"required"`
		TimeKey string `json:"timeKey" validate:"required"`
	}

	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateDateKey(req.DateKey); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	if err := utils.ValidateTimeKey(req.TimeKey); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	sess.Toggle(req.DateKey, req.TimeKey)

	h.successResponse(w, r, "", map[string]any{
		"selected":      sess.IsSelected(req.DateKey, req.TimeKey),
		"totalSelected": sess.TotalSelected(),
	})
}

func (h *Handler) CopyDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DateKey string `json:"dateKey" validate:"required"`
	}

	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateDateKey(req.DateKey); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	date, _ := time.Parse("2006-01-02", req.DateKey)
	snapshot := sess.Copy(req.DateKey)

	h.successResponse(w, r, fmt.Sprintf("Copied %s's schedule", date.Weekday()), map[string]any{
		"snapshot": snapshot,
	})
}

func (h *Handler) PasteDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DateKey  string   `json:"dateKey" validate:"required"`
		Snapshot []string `json:"snapshot"`
	}

	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateDateKey(req.DateKey); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	if err := utils.ValidateSnapshot(req.Snapshot); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	sess.Paste(req.DateKey, req.Snapshot)

	date, _ := time.Parse("2006-01-02", req.DateKey)
	h.successResponse(w, r, fmt.Sprintf("Pasted to %s, %s", date.Weekday(), date.Format("Jan 2")), map[string]any{
		"totalSelected": sess.TotalSelected(),
	})
}

func (h *Handler) ClearDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DateKey string `json:"dateKey" validate:"required"`
	}

	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateDateKey(req.DateKey); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	sess.Clear(req.DateKey)

	date, _ := time.Parse("2006-01-02", req.DateKey)
	h.infoResponse(w, r, fmt.Sprintf("Cleared all slots for %s", date.Weekday()), map[string]any{
		"totalSelected": sess.TotalSelected(),
	})
}

func (h *Handler) SaveAvailability(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	if sess.TotalSelected() == 0 {
		h.warningResponse(w, r, "Please select at least one time slot", nil)
		return
	}

	if err := h.store.SaveAvailability(sess.ID, sess.Snapshot()); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	sess.SetLastSaved(time.Now())

	anchor := sess.Anchor()
	_, weekNum := anchor.ISOWeek()
	msg := fmt.Sprintf("Saved! Week %d: %s–%s",
		weekNum, anchor.Format("Jan 2"), availability.DateForDay(anchor, 6).Format("Jan 2"))

	h.successResponse(w, r, msg, map[string]any{
		"totalSelected": sess.TotalSelected(),
		"lastSaved":     sess.LastSaved(),
	})
}

func (h *Handler) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Template string `json:"template" validate:"required"`
		DateKey  string `json:"dateKey" validate:"required"`
	}

	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateDateKey(req.DateKey); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if req.Template == availability.TemplateCustom {
		// the "AI suggestion" applies after a staged delay; a second
		// trigger restarts the clock instead of stacking
		sess.ScheduleCustomPattern(req.DateKey, time.Duration(h.config.Availability.AnalysisDelay)*time.Millisecond)
		h.infoResponse(w, r, "AI is analyzing your availability patterns...", nil)
		return
	}

	if err := sess.ApplyTemplate(req.DateKey, req.Template); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	msg := fmt.Sprintf("Applied %s template", availability.TemplateLabel(req.Template))
	if req.Template == availability.TemplateWeekend {
		msg = "Applied Weekend Pattern to Saturday and Sunday"
	}

	h.successResponse(w, r, msg, map[string]any{
		"totalSelected": sess.TotalSelected(),
	})
}
