package memory

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Entry is one journaled exchange: which route was hit, with what, and what
// came back.
type Entry struct {
	ID        string         `json:"id"`
	Route     string         `json:"route"`
	Request   map[string]any `json:"request"`
	Response  map[string]any `json:"response"`
	Timestamp time.Time      `json:"timestamp"`
}

type session struct {
	Started time.Time
	Entries []Entry
}

// Store holds per-session journals in memory. Nothing survives the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*session)}
}

// Log appends an entry to the session journal, creating the session when
// sessionID is empty.
func (s *Store) Log(sessionID, route string, request, response map[string]any) (string, Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	sess := s.sessions[sessionID]
	if sess == nil {
		sess = &session{Started: time.Now().UTC()}
		s.sessions[sessionID] = sess
	}
	e := Entry{
		ID:        uuid.NewString(),
		Route:     route,
		Request:   request,
		Response:  response,
		Timestamp: time.Now().UTC(),
	}
	sess.Entries = append(sess.Entries, e)
	return sessionID, e
}

// Recall returns the session's entries, optionally filtered by route.
func (s *Store) Recall(sessionID, routeFilter string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := s.sessions[sessionID]
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	out := make([]Entry, 0, len(sess.Entries))
	for _, e := range sess.Entries {
		if routeFilter == "" || e.Route == routeFilter {
			out = append(out, e)
		}
	}
	return out, nil
}

// ConfidenceScore rates a session journal by depth (entry count) and
// diversity (distinct routes): (depth + 2*diversity) / (depth+1) * 100,
// rounded to two decimals.
func (s *Store) ConfidenceScore(sessionID string) (score float64, diversity, depth int, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := s.sessions[sessionID]
	if sess == nil {
		return 0, 0, 0, ErrSessionNotFound
	}
	depth = len(sess.Entries)
	if depth == 0 {
		return 0, 0, 0, nil
	}
	routes := make(map[string]struct{}, depth)
	for _, e := range sess.Entries {
		routes[e.Route] = struct{}{}
	}
	diversity = len(routes)
	score = float64(depth+diversity*2) / float64(depth+1) * 100
	score = math.Round(score*100) / 100
	return score, diversity, depth, nil
}

// Validate checks that every journal entry carries the required fields.
func (s *Store) Validate(sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := s.sessions[sessionID]
	if sess == nil {
		return false, ErrSessionNotFound
	}
	for _, e := range sess.Entries {
		if e.ID == "" || e.Route == "" || e.Timestamp.IsZero() {
			return false, nil
		}
	}
	return true, nil
}

// Summary aggregates journal counts across all sessions.
func (s *Store) Summary() (sessions, entries int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sess := range s.sessions {
		sessions++
		entries += len(sess.Entries)
	}
	return sessions, entries
}
