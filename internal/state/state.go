package state

import (
	"fmt"
	"sync"
)

// ViewKind enumerates the dashboard screens.
type ViewKind int

const (
	Main ViewKind = iota
	Monitoring
	Error
)

// View is the active screen plus the error payload when Kind is Error.
type View struct {
	Kind   ViewKind
	Header string
	Detail string
}

// ErrorView returns an Error view carrying header and detail text.
func ErrorView(header, detail string) View {
	return View{Kind: Error, Header: header, Detail: detail}
}

func (v View) String() string {
	switch v.Kind {
	case Monitoring:
		return "Monitoring"
	case Error:
		return fmt.Sprintf("Error header %s; description %s", v.Header, v.Detail)
	default:
		return "Main"
	}
}

// Snapshot is a consistent copy of the whole state record.
type Snapshot struct {
	View          View
	Running       bool
	HideSensitive bool
}

// State is the single source of truth shared by the input task and the
// render loop. Every access goes through the one mutex; readers take a
// Snapshot so view and flags are never observed mismatched.
type State struct {
	mu sync.Mutex

	view          View
	running       bool
	hideSensitive bool
}

// New returns state at startup: Main view, running, sensitive info hidden.
func New() *State {
	return &State{
		view:          View{Kind: Main},
		running:       true,
		hideSensitive: true,
	}
}

// ChangeView replaces the active view unconditionally.
func (s *State) ChangeView(v View) {
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
}

// ToggleRunning flips the running flag.
func (s *State) ToggleRunning() {
	s.mu.Lock()
	s.running = !s.running
	s.mu.Unlock()
}

// ToggleHideSensitive flips the hide flag.
func (s *State) ToggleHideSensitive() {
	s.mu.Lock()
	s.hideSensitive = !s.hideSensitive
	s.mu.Unlock()
}

// Snapshot returns the whole record under one lock acquisition.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		View:          s.view,
		Running:       s.running,
		HideSensitive: s.hideSensitive,
	}
}
