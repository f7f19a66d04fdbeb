package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/therapprove/provider-portal/backend/internal/availability"
	"github.com/therapprove/provider-portal/backend/internal/config"
	"github.com/therapprove/provider-portal/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	store       repository.Store
	sessions    *availability.Manager
	translator  ut.Translator
	mailChannel *amqp.Channel // nil when the mail pipeline is disabled

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, store repository.Store, sessions *availability.Manager, mailCh *amqp.Channel) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		store:       store,
		sessions:    sessions,
		translator:  trans,
		mailChannel: mailCh,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// session lifecycle
	h.Mux.Route("/session", func(r chi.Router) {
		r.Post("/start", h.StartSession)
		r.With(h.session).Get("/", h.GetSessionInfo)
		r.With(h.session).Post("/end", h.EndSession)
	})

	// the referral workboard is shared, not session-scoped
	h.Mux.Route("/referrals", func(r chi.Router) {
		r.Get("/", h.ListReferrals)
		r.Get("/board", h.GetReferralBoard)
	})

	// everything below needs an availability session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Route("/week", func(r chi.Router) {
			r.Get("/", h.GetWeekAvailability)
			r.Post("/advance", h.AdvanceWeek)
		})

		r.Route("/availability", func(r chi.Router) {
			r.Post("/toggle", h.ToggleSlot)
			r.Post("/copy", h.CopyDay)
			r.Post("/paste", h.PasteDay)
			r.Post("/clear", h.ClearDay)
			r.Post("/save", h.SaveAvailability)
			r.Post("/template", h.ApplyTemplate)
		})

		r.Route("/export", func(r chi.Router) {
			r.Get("/csv", h.ExportCSV)
			r.Get("/ics", h.ExportICS)
			r.Get("/excel", h.ExportExcel)
			r.Get("/google", h.ExportGoogleCalendar)
			r.Post("/email", h.EmailExport)
		})
	})
}
