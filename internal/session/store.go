// Package session holds the authenticated identity and bearer credential.
// The credential is persisted across process restarts; the identity is
// reloaded whenever the credential changes and is the only cross-view shared
// mutable state in the client. Dependent views subscribe to identity changes
// instead of reaching into ambient state.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/jobmatch-cli/internal/api"
	"github.com/jonathan/jobmatch-cli/internal/types"
)

// AuthError represents a rejected login or registration attempt.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authentication failed: %s", e.Message)
	}
	return "authentication failed"
}

// state is the on-disk session file shape.
type state struct {
	Token    string    `json:"token,omitempty"`
	SavedAt  time.Time `json:"saved_at,omitempty"`
	ReturnTo string    `json:"return_to,omitempty"`
}

// Store owns the current credential and identity.
type Store struct {
	mu       sync.Mutex
	client   *api.Client
	log      *logrus.Logger
	path     string
	token    string
	returnTo string
	identity *types.Identity
	subs     []func(*types.Identity)
}

// DefaultPath returns the session file location: JOBMATCH_SESSION_FILE when
// set, otherwise ~/.config/jobmatch/session.json.
func DefaultPath() (string, error) {
	if p := os.Getenv("JOBMATCH_SESSION_FILE"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "jobmatch", "session.json"), nil
}

// NewStore creates a store backed by the given session file, loading any
// previously persisted credential, and installs itself as the client's
// credential source.
func NewStore(client *api.Client, path string, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.New()
	}
	s := &Store{client: client, log: log, path: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run; nothing persisted yet.
	case err != nil:
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	default:
		var st state
		if err := json.Unmarshal(data, &st); err != nil {
			// A corrupt session file is treated as no session.
			log.WithError(err).Warn("discarding unreadable session file")
		} else {
			s.token = st.Token
			s.returnTo = st.ReturnTo
		}
	}

	client.SetTokenProvider(s.Token)
	return s, nil
}

// Token returns the current bearer credential, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Identity returns the current identity, or nil when unauthenticated.
func (s *Store) Identity() *types.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Subscribe registers a callback invoked on every identity change, including
// the change to nil at logout or silent degrade.
func (s *Store) Subscribe(fn func(*types.Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// setIdentity replaces the identity wholesale under lock and returns the
// subscriber snapshot; the caller notifies after releasing the lock.
func (s *Store) setIdentity(id *types.Identity) []func(*types.Identity) {
	s.identity = id
	subs := make([]func(*types.Identity), len(s.subs))
	copy(subs, s.subs)
	return subs
}

func notify(subs []func(*types.Identity), id *types.Identity) {
	for _, fn := range subs {
		fn(id)
	}
}

// persist writes the current credential state to disk. Caller must hold s.mu.
func (s *Store) persist() error {
	if s.token == "" && s.returnTo == "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing session file: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	data, err := json.MarshalIndent(state{Token: s.token, SavedAt: time.Now().UTC(), ReturnTo: s.returnTo}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Login authenticates with email and password. Validation failures and
// rejected credentials surface as errors; on success the credential is
// persisted and the identity loaded.
func (s *Store) Login(ctx context.Context, email, password string) error {
	req := &types.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid login input: %w", err)
	}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return authError(err)
	}
	return s.adopt(ctx, resp)
}

// Register creates a new identity; the contract matches Login.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	req := &types.RegisterRequest{Name: name, Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid registration input: %w", err)
	}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return authError(err)
	}
	return s.adopt(ctx, resp)
}

// adopt stores the credential from a successful auth response, then reloads
// the identity. The reload is unconditional on every credential change; the
// user object in the auth response only bridges the gap until it completes.
func (s *Store) adopt(ctx context.Context, resp *types.AuthResponse) error {
	s.mu.Lock()
	s.token = resp.Token
	s.returnTo = "" // consumed by the login flow
	err := s.persist()
	subs := s.setIdentity(resp.User)
	s.mu.Unlock()
	notify(subs, resp.User)
	if err != nil {
		return err
	}
	return s.LoadIdentity(ctx)
}

// Logout clears the credential and identity synchronously. No network call.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.returnTo = ""
	err := s.persist()
	subs := s.setIdentity(nil)
	s.mu.Unlock()
	notify(subs, nil)
	return err
}

// LoadIdentity fetches the current identity when a credential is present.
// Any failure clears the credential and identity rather than surfacing an
// error: an expired or revoked token silently demotes the session to
// unauthenticated.
func (s *Store) LoadIdentity(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return nil
	}

	// A token whose exp claim is already past will be rejected anyway; skip
	// the roundtrip. Opaque (non-JWT) tokens pass through to the server.
	if tokenExpired(token) {
		s.log.Debug("stored credential expired; clearing session")
		return s.degrade()
	}

	id, err := s.client.Me(ctx)
	if err != nil {
		s.log.WithError(err).Debug("identity reload failed; clearing session")
		return s.degrade()
	}

	s.mu.Lock()
	subs := s.setIdentity(id)
	s.mu.Unlock()
	notify(subs, id)
	return nil
}

// degrade drops the credential and identity without surfacing an error.
func (s *Store) degrade() error {
	s.mu.Lock()
	s.token = ""
	err := s.persist()
	subs := s.setIdentity(nil)
	s.mu.Unlock()
	notify(subs, nil)
	return err
}

// SetReturnTo remembers the destination an unauthenticated visitor asked for,
// so the login flow can mention it. The return navigation itself is the
// caller's concern.
func (s *Store) SetReturnTo(destination string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.returnTo = destination
	return s.persist()
}

// ReturnTo returns the remembered destination, if any.
func (s *Store) ReturnTo() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.returnTo
}

// tokenExpired reports whether tok is a JWT whose exp claim is in the past.
// Parsing is unverified: the server remains the authority on validity, this
// only avoids a doomed roundtrip.
func tokenExpired(tok string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// authError converts API-level failures from login/register into *AuthError.
func authError(err error) error {
	if reqErr, ok := err.(*api.RequestError); ok {
		return &AuthError{StatusCode: reqErr.StatusCode, Message: reqErr.Message}
	}
	return err
}
