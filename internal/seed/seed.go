package seed

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/therapprove/provider-portal/backend/internal/availability"
	"github.com/therapprove/provider-portal/backend/internal/repository"
	"github.com/therapprove/provider-portal/backend/internal/utils"
)

// SeedDemoData fills the store with random availability sessions and a
// referral list so a fresh environment has something to show. Session IDs
// are logged so they can be replayed against the API.
func SeedDemoData(store repository.Store, sessions, referrals int) {
	anchor := availability.StartOfWeek(time.Now())

	seeded := 0
	for i := 0; i < sessions; i++ {
		sessionID := uuid.NewString()
		avail := utils.GenerateRandomAvailability(anchor)
		if len(avail) == 0 {
			continue
		}

		if err := store.SaveAvailability(sessionID, avail); err != nil {
			slog.Error("failed to seed availability", slog.String("error", err.Error()))
			continue
		}

		slog.Info("seeded availability session", slog.String("sessionID", sessionID), slog.Int("dates", len(avail)))
		seeded++
	}
	slog.Info("availability seeding done", slog.Int("count", seeded))

	if referrals > 0 {
		rows := utils.GenerateRandomReferrals(referrals)
		if err := store.SaveReferrals(rows); err != nil {
			slog.Error("failed to seed referrals", slog.String("error", err.Error()))
			return
		}
		slog.Info("seeded referrals", slog.Int("count", len(rows)))
	}
}
