// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/skills-matrix/catalog"
	"github.com/danielhkuo/skills-matrix/ledger"
	"github.com/danielhkuo/skills-matrix/models"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrAlreadySubmitted = errors.New("session has already submitted a response")
)

// Session owns one user's in-progress allocation and its lifecycle state.
// editing is the working state; submitted is terminal and refuses further
// edits or resubmission.
type Session struct {
	mu         sync.Mutex
	token      string
	createdAt  time.Time
	ledger     *ledger.Ledger
	state      string
	responseID string
}

// Token returns the session's opaque identifier.
func (s *Session) Token() string { return s.token }

// Get returns the points allocated to skill.
func (s *Session) Get(skill string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Get(skill)
}

// Set allocates points to skill. Fails with ErrAlreadySubmitted once the
// session has submitted; ledger errors pass through unchanged.
func (s *Session) Set(skill string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == models.StateSubmitted {
		return ErrAlreadySubmitted
	}
	return s.ledger.Set(skill, points)
}

// Ceiling returns the maximum value currently assignable to skill.
func (s *Session) Ceiling(skill string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Ceiling(skill)
}

// View is a consistent snapshot of a session for rendering.
type View struct {
	State      string
	Points     map[string]int
	Skills     []string
	Total      int
	Remaining  int
	ResponseID string
}

// View returns a snapshot of the session's current state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		State:      s.state,
		Points:     s.ledger.Snapshot(),
		Skills:     s.ledger.Skills(),
		Total:      s.ledger.Total(),
		Remaining:  s.ledger.Remaining(),
		ResponseID: s.responseID,
	}
}

// Manager tracks live sessions by token.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	cat      *catalog.Catalog
}

func NewManager(cat *catalog.Catalog) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		cat:      cat,
	}
}

// Create starts a new session with an all-zero ledger.
func (m *Manager) Create() *Session {
	s := &Session{
		token:     uuid.NewString(),
		createdAt: time.Now(),
		ledger:    ledger.New(m.cat),
		state:     models.StateEditing,
	}

	m.mu.Lock()
	m.sessions[s.token] = s
	m.mu.Unlock()

	return s
}

// Get looks up a session by token.
func (m *Manager) Get(token string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, token)
	}
	return s, nil
}
