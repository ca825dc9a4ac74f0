// pkg/memcache/quiz_sessions.go
package memcache

import (
	"sync"
	"time"
)

// QuizSelection is what the quiz popup collects before showing results.
type QuizSelection struct {
	Nickname     string
	Budget       string
	Destinations []string
	Answered     bool
}

type QuizSessionStore interface {
	Put(sessionID string, sel QuizSelection, ttl time.Duration)

	// Get returns the selection for sessionID if not expired. Sessions are
	// not single-use; the result page may re-read them.
	Get(sessionID string) (QuizSelection, bool)

	Delete(sessionID string)
}

type sessionEntry struct {
	sel       QuizSelection
	expiresAt time.Time
}

type QuizSessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewQuizSessions() *QuizSessions {
	return &QuizSessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *QuizSessions) Put(sessionID string, sel QuizSelection, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = sessionEntry{
		sel:       sel,
		expiresAt: time.Now().Add(ttl),
	}
	// Opportunistic cleanup so abandoned sessions don't pile up.
	if len(s.data) > 1000 {
		now := time.Now()
		for id, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, id)
			}
		}
	}
}

func (s *QuizSessions) Get(sessionID string) (QuizSelection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return QuizSelection{}, false
	}
	return e.sel, true
}

func (s *QuizSessions) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
