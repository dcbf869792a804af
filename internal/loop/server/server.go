// Package server tracks the games running in one process: it hands out
// session handles, keeps a shared leaderboard and broadcasts shutdown.
// Each session still owns and ticks its own game.
package server

import (
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxUsernameLength is the display length of names on the leaderboard.
const MaxUsernameLength = 16

// TopScoresShown is how many leaderboard entries snapshots carry.
const TopScoresShown = 5

// GameServer is the part of Server that sessions use.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(id string)
	ReportScore(id string, score int)
	TopScores() []TopScoreEntry
	Players() int
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientEventType identifies a server-to-session event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// ClientEvent is sent from the server to a session.
type ClientEvent struct {
	Type ClientEventType
}

// ClientHandle represents a session's registration with the server.
type ClientHandle struct {
	ID       string
	Username string
	EventsCh chan ClientEvent
	seq      int
}

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	seq      int // Registration order of the first scoring session, for a stable tie-break
}

// Server holds the registered sessions and the leaderboard.
type Server struct {
	mu      sync.RWMutex
	clients map[string]*ClientHandle
	best    map[string]*TopScoreEntry // By username
	nextSeq int
}

// NewServer creates an empty server.
func NewServer() *Server {
	return &Server{
		clients: make(map[string]*ClientHandle),
		best:    make(map[string]*TopScoreEntry),
	}
}

// RegisterClient adds a session and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	username = truncateRunes(username, MaxUsernameLength)
	if username == "" {
		username = "anonymous"
	}

	h := &ClientHandle{
		ID:       uuid.NewString(),
		Username: username,
		EventsCh: make(chan ClientEvent, 4),
	}

	s.mu.Lock()
	h.seq = s.nextSeq
	s.nextSeq++
	s.clients[h.ID] = h
	s.mu.Unlock()
	return h
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// UnregisterClient removes a session. Its username's best score is kept.
func (s *Server) UnregisterClient(id string) {
	s.mu.Lock()
	delete(s.clients, id)
	s.mu.Unlock()
}

// ReportScore records a finished run of a registered session. Each
// username keeps only its best run.
func (s *Server) ReportScore(id string, score int) {
	if score <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.clients[id]
	if !ok {
		return
	}
	e, ok := s.best[h.Username]
	if !ok {
		s.best[h.Username] = &TopScoreEntry{Username: h.Username, Score: score, seq: h.seq}
		return
	}
	if score > e.Score {
		e.Score = score
	}
}

// TopScores returns the best run per username, highest first.
func (s *Server) TopScores() []TopScoreEntry {
	s.mu.RLock()
	entries := make([]TopScoreEntry, 0, len(s.best))
	for _, e := range s.best {
		if e.Score > 0 {
			entries = append(entries, *e)
		}
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].seq < entries[j].seq
	})
	if len(entries) > TopScoresShown {
		entries = entries[:TopScoresShown]
	}
	return entries
}

// Players returns the number of connected sessions.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Shutdown notifies every session and waits for them to unregister,
// or for the timeout.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			if s.Players() == 0 {
				return
			}
		}
	}
}
