// Package session keeps per-session conversation history in memory for the
// lifetime of the process. Histories are unbounded; nothing expires them
// besides an explicit clear.
package session

import (
	"sort"
	"sync"

	"cpace/internal/models"
)

type conversation struct {
	mu       sync.Mutex
	messages []models.ChatMessage
}

// Store maps session identifiers to ordered message histories. The store
// lock only guards the map; appends take the per-session lock so unrelated
// sessions never serialize on each other.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*conversation
}

// New creates an empty session store.
func New() *Store {
	return &Store{
		sessions: make(map[string]*conversation),
	}
}

func (s *Store) session(id string) *conversation {
	s.mu.RLock()
	conv, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return conv
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if conv, ok = s.sessions[id]; ok {
		return conv
	}
	conv = &conversation{}
	s.sessions[id] = conv
	return conv
}

// History returns a copy of the session's message history, creating an empty
// session on first access.
func (s *Store) History(id string) []models.ChatMessage {
	conv := s.session(id)
	conv.mu.Lock()
	defer conv.mu.Unlock()

	history := make([]models.ChatMessage, len(conv.messages))
	copy(history, conv.messages)
	return history
}

// Add appends a message to the session's history, creating the session if
// absent.
func (s *Store) Add(id string, msg models.ChatMessage) {
	conv := s.session(id)
	conv.mu.Lock()
	defer conv.mu.Unlock()
	conv.messages = append(conv.messages, msg)
}

// Clear removes a session entirely. Clearing an unknown session is a no-op.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// List returns all known session identifiers, sorted for stable output.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
