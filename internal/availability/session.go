package availability

import (
	"sync"
	"time"

	"github.com/therapprove/provider-portal/backend/internal/domain"
)

// Session is one provider's working context: the availability mapping, the
// anchored week and any pending deferred mutations. Handlers resolve
// exactly one session per request; sessions are never shared across
// session keys.
type Session struct {
	ID string

	mu           sync.Mutex
	anchor       time.Time
	availability domain.WeeklyAvailability
	lastSaved    time.Time
	pending      map[string]*time.Timer
}

func (s *Session) Anchor() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anchor
}

// Advance moves the week anchor by whole weeks and returns the new anchor.
func (s *Session) Advance(deltaWeeks int) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anchor = s.anchor.AddDate(0, 0, 7*deltaWeeks)
	return s.anchor
}

func (s *Session) Toggle(dateKey, timeKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	Toggle(s.availability, dateKey, timeKey)
}

func (s *Session) Copy(dateKey string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Copy(s.availability, dateKey)
}

func (s *Session) Paste(dateKey string, snapshot []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	Paste(s.availability, dateKey, snapshot)
}

func (s *Session) Clear(dateKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	Clear(s.availability, dateKey)
}

func (s *Session) IsSelected(dateKey, timeKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return IsSelected(s.availability, dateKey, timeKey)
}

func (s *Session) TotalSelected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalSelected(s.availability)
}

// Snapshot deep-copies the mapping so saves and exports do not observe
// later mutation.
func (s *Session) Snapshot() domain.WeeklyAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CopyAll(s.availability)
}

func (s *Session) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

func (s *Session) SetLastSaved(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSaved = t
}

// ApplyTemplate applies one of the immediate patterns to the session.
func (s *Session) ApplyTemplate(dateKey, template string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ApplyTemplate(s.availability, s.anchor, dateKey, template)
}

// ScheduleCustomPattern arms the deferred custom-pattern mutation for one
// date. The task is keyed by date: triggering it again before it fires
// replaces the pending timer instead of racing it.
func (s *Session) ScheduleCustomPattern(dateKey string, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.pending[dateKey]; ok {
		t.Stop()
	}
	s.pending[dateKey] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.pending, dateKey)
		applyCustomPattern(s.availability, dateKey)
	})
}

// cancelPending stops every armed timer; called when the session is
// destroyed.
func (s *Session) cancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for dateKey, t := range s.pending {
		t.Stop()
		delete(s.pending, dateKey)
	}
}

// Manager owns the live sessions, one per session key. Persisted blobs
// outlive the process; Session objects do not.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Create registers a session with the given starting state. An existing
// session under the same id is replaced.
func (m *Manager) Create(id string, anchor time.Time, avail domain.WeeklyAvailability, lastSaved time.Time) *Session {
	if avail == nil {
		avail = domain.WeeklyAvailability{}
	}
	s := &Session{
		ID:           id,
		anchor:       anchor,
		availability: avail,
		lastSaved:    lastSaved,
		pending:      make(map[string]*time.Timer),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.sessions[id]; ok {
		old.cancelPending()
	}
	m.sessions[id] = s
	return s
}

// Destroy cancels the session's pending work and forgets it.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.cancelPending()
		delete(m.sessions, id)
	}
}
