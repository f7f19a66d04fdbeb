package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

func TestAvailabilityRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	availability := domain.WeeklyAvailability{
		"2025-01-06": {"9:00": {}, "9:15": {}, "14:30": {}},
		"2025-01-08": {"17:45": {}},
		"2025-01-09": {},
	}
	require.NoError(t, store.SaveAvailability("sid-1", availability))

	loaded, lastSaved := store.LoadAvailability("sid-1")
	assert.False(t, lastSaved.IsZero(), "save should record a last-saved timestamp")
	assert.Equal(t, availability, loaded)
}

func TestLoadAvailabilityMissingSession(t *testing.T) {
	store := NewMemoryStore()

	loaded, lastSaved := store.LoadAvailability("never-saved")
	require.NotNil(t, loaded, "missing session must load as a usable empty map")
	assert.Empty(t, loaded)
	assert.True(t, lastSaved.IsZero())
}

func TestLoadAvailabilityCorruptBlob(t *testing.T) {
	store := NewMemoryStore()
	store.availability["sid-1"] = []byte("{not json")

	loaded, _ := store.LoadAvailability("sid-1")
	require.NotNil(t, loaded)
	assert.Empty(t, loaded, "corrupt blob should degrade to empty")
}

func TestDeleteAvailability(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveAvailability("sid-1", domain.WeeklyAvailability{"2025-01-06": {"9:00": {}}}))
	require.NoError(t, store.DeleteAvailability("sid-1"))

	loaded, lastSaved := store.LoadAvailability("sid-1")
	assert.Empty(t, loaded)
	assert.True(t, lastSaved.IsZero())
}

func TestReferralsRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	assert.Nil(t, store.LoadReferrals())

	referrals := []domain.Referral{
		{ID: "12847", PatientName: "Johnson, Emma", Stage: domain.StageScheduled, WaitDays: 8, Zip: "46032"},
		{ID: "12851", PatientName: "Garcia, Isabella", Stage: domain.StagePCPReferral, WaitDays: 85, Zip: "40207"},
	}
	require.NoError(t, store.SaveReferrals(referrals))

	loaded := store.LoadReferrals()
	require.Len(t, loaded, 2)
	assert.Equal(t, referrals, loaded)
}

func TestEncodeAvailabilityKeepsEmptyDates(t *testing.T) {
	blob, err := encodeAvailability(domain.WeeklyAvailability{"2025-01-06": {}})
	require.NoError(t, err)

	decoded, err := decodeAvailability(blob)
	require.NoError(t, err)

	set, ok := decoded["2025-01-06"]
	require.True(t, ok, "a touched-but-empty date must survive the round trip")
	assert.NotNil(t, set)
}
