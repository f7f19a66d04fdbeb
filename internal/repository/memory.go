package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

// MemoryStore mirrors RedisStore for tests and single-process runs.
// It stores encoded blobs, not live maps, so it exercises the same
// serialization path.
type MemoryStore struct {
	mu            sync.RWMutex
	availability  map[string][]byte
	lastSaved     map[string]time.Time
	referralsBlob []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		availability: make(map[string][]byte),
		lastSaved:    make(map[string]time.Time),
	}
}

func (s *MemoryStore) SaveAvailability(sessionID string, availability domain.WeeklyAvailability) error {
	blob, err := encodeAvailability(availability)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.availability[sessionID] = blob
	s.lastSaved[sessionID] = time.Now()
	return nil
}

func (s *MemoryStore) LoadAvailability(sessionID string) (domain.WeeklyAvailability, time.Time) {
	s.mu.RLock()
	blob, ok := s.availability[sessionID]
	lastSaved := s.lastSaved[sessionID]
	s.mu.RUnlock()

	if !ok {
		return domain.WeeklyAvailability{}, time.Time{}
	}
	availability, err := decodeAvailability(blob)
	if err != nil {
		return domain.WeeklyAvailability{}, time.Time{}
	}
	return availability, lastSaved
}

func (s *MemoryStore) DeleteAvailability(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.availability, sessionID)
	delete(s.lastSaved, sessionID)
	return nil
}

func (s *MemoryStore) SaveReferrals(referrals []domain.Referral) error {
	blob, err := json.Marshal(referrals)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.referralsBlob = blob
	return nil
}

func (s *MemoryStore) LoadReferrals() []domain.Referral {
	s.mu.RLock()
	blob := s.referralsBlob
	s.mu.RUnlock()

	if blob == nil {
		return nil
	}
	var referrals []domain.Referral
	if err := json.Unmarshal(blob, &referrals); err != nil {
		return nil
	}
	return referrals
}
