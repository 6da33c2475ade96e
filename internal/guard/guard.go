// Package guard gates access to authenticated commands. Until the session
// store completes its initial identity reload the guard stays in
// StateLoading and makes no navigation decision; afterwards it either admits
// the caller or redirects to the login flow, remembering the originally
// requested destination.
package guard

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonathan/jobmatch-cli/internal/session"
)

// State is the guard's resolution state.
type State int

const (
	// StateLoading means the initial identity reload has not completed.
	StateLoading State = iota
	// StateAuthenticated admits the wrapped view.
	StateAuthenticated
	// StateUnauthenticated redirects to the login view.
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "loading"
	}
}

// RedirectError is returned when an unauthenticated visitor requests a
// guarded destination.
type RedirectError struct {
	Destination string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("not signed in: run 'jobmatch login' first (requested: %s)", e.Destination)
}

// Guard wraps the session store with a resolve-once authentication decision.
type Guard struct {
	store *session.Store

	mu       sync.Mutex
	resolved bool
	state    State
}

// New creates a guard over the given session store.
func New(store *session.Store) *Guard {
	return &Guard{store: store, state: StateLoading}
}

// State reports the current resolution state without triggering a reload.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Resolve runs the initial identity reload exactly once and returns the
// resulting state. Subsequent calls return the already-resolved state.
func (g *Guard) Resolve(ctx context.Context) State {
	g.mu.Lock()
	if g.resolved {
		defer g.mu.Unlock()
		return g.state
	}
	g.mu.Unlock()

	// The reload silently degrades on a rejected credential, so the only
	// signal that matters afterwards is whether an identity is present.
	_ = g.store.LoadIdentity(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.resolved {
		g.resolved = true
		if g.store.Identity() != nil {
			g.state = StateAuthenticated
		} else {
			g.state = StateUnauthenticated
		}
	}
	return g.state
}

// Require resolves the guard and admits authenticated callers. Unauthenticated
// callers get a *RedirectError after the requested destination is recorded so
// the login flow can return them there.
func (g *Guard) Require(ctx context.Context, destination string) error {
	if g.Resolve(ctx) == StateAuthenticated {
		return nil
	}
	if err := g.store.SetReturnTo(destination); err != nil {
		return err
	}
	return &RedirectError{Destination: destination}
}
