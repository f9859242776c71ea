package reminder

import (
	"sort"
	"sync"
	"time"

	"github.com/akyairhashvil/sprout/internal/models"
)

type sessionEntry struct {
	plantID    int64
	stageIndex int
	stageEnd   time.Time
	payload    models.ReminderPayload
}

// Session is the dedup set for one plant-viewing context. It remembers which
// reminder keys were scheduled during its lifetime, for which stage end and
// with which payload.
// Create one per view; do not share across unrelated views.
type Session struct {
	mu        sync.Mutex
	scheduled map[string]sessionEntry
}

func NewSession() *Session {
	return &Session{scheduled: make(map[string]sessionEntry)}
}

// Has reports whether key was scheduled in this session.
func (s *Session) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.scheduled[key]
	return ok
}

// Len is the number of keys currently held.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scheduled)
}

// Keys returns the held keys in sorted order.
func (s *Session) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.scheduled))
	for k := range s.scheduled {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Session) fresh(key string, stageEnd time.Time, payload models.ReminderPayload) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.scheduled[key]
	return ok && e.stageEnd.Equal(stageEnd) && e.payload == payload
}

func (s *Session) mark(key string, stageEnd time.Time, payload models.ReminderPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled[key] = sessionEntry{
		plantID:    payload.PlantID,
		stageIndex: payload.StageIndex,
		stageEnd:   stageEnd,
		payload:    payload,
	}
}

func (s *Session) forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scheduled, key)
}

// orphans lists keys held for plantID whose stage index is outside [0, stages).
func (s *Session) orphans(plantID int64, stages int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k, e := range s.scheduled {
		if e.plantID == plantID && e.stageIndex >= stages {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
