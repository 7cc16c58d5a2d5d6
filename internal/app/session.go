// Package app holds per-visitor application state and renders it: each
// Session owns a navigation history and the selected league, and Render
// turns a session snapshot plus the shared identity avatars into exactly one
// screen.
package app

import (
	"sync"
	"time"

	"github.com/fwl-league/fwl-hub/internal/nav"
)

// State is an immutable snapshot of a session.
type State struct {
	History        []nav.View `json:"history"`
	Current        nav.View   `json:"current"`
	SelectedLeague *string    `json:"selected_league"`
}

// Session is one visitor's navigation. All methods are safe for concurrent
// use; each mutation is applied as a unit.
type Session struct {
	mu       sync.Mutex
	history  *nav.History
	selected *string
	lastSeen time.Time
}

// NewSession starts at the landing view with no league selected.
func NewSession(now time.Time) *Session {
	return &Session{
		history:  nav.NewHistory(nav.Landing),
		lastSeen: now,
	}
}

// Open pushes v.
func (s *Session) Open(v nav.View) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Push(v)
	return s.snapshot()
}

// Back pops the current view; at the root it does nothing.
func (s *Session) Back() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Pop()
	return s.snapshot()
}

// SelectLeague records id and pushes the dashboard in one step: no caller
// can observe the new selection without the dashboard on top, or the
// reverse.
func (s *Session) SelectLeague(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &id
	s.history.Push(nav.Dashboard)
	return s.snapshot()
}

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) snapshot() State {
	st := State{
		History: s.history.Entries(),
		Current: s.history.Current(),
	}
	if s.selected != nil {
		id := *s.selected
		st.SelectedLeague = &id
	}
	return st
}
