package repository

import (
	"encoding/json"
	"time"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

const (
	availabilityKeyPrefix = "availability-data:"
	lastSavedKeyPrefix    = "availability-last-saved:"
	referralsKey          = "referrals-data"
)

// Store is the persistence surface: one availability blob plus a "last
// saved" timestamp per session, and one shared referral list. Loads never
// fail the caller; a missing or unreadable blob degrades to empty state.
type Store interface {
	SaveAvailability(sessionID string, availability domain.WeeklyAvailability) error
	LoadAvailability(sessionID string) (domain.WeeklyAvailability, time.Time)
	DeleteAvailability(sessionID string) error
	SaveReferrals(referrals []domain.Referral) error
	LoadReferrals() []domain.Referral
}

// The blob format is a date key to time key array mapping. Array order is
// not meaningful; membership is.
func encodeAvailability(availability domain.WeeklyAvailability) ([]byte, error) {
	out := make(map[string][]string, len(availability))
	for dateKey, set := range availability {
		keys := make([]string, 0, len(set))
		for timeKey := range set {
			keys = append(keys, timeKey)
		}
		out[dateKey] = keys
	}
	return json.Marshal(out)
}

func decodeAvailability(blob []byte) (domain.WeeklyAvailability, error) {
	var raw map[string][]string
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, err
	}

	availability := make(domain.WeeklyAvailability, len(raw))
	for dateKey, keys := range raw {
		set := make(domain.TimeSet, len(keys))
		for _, timeKey := range keys {
			set[timeKey] = struct{}{}
		}
		availability[dateKey] = set
	}
	return availability, nil
}
