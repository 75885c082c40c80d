package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrNotFound is returned by a Backend when no record is persisted.
var ErrNotFound = errors.New("session record not found")

// ErrNoSession is returned by mutations that require an active session.
var ErrNoSession = errors.New("no active session")

// Backend defines persistence for the single serialized session record.
// Implementations store one opaque blob under a fixed key.
type Backend interface {
	// Load retrieves the persisted record, or ErrNotFound if absent.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the persisted record, last write wins.
	Save(ctx context.Context, record []byte) error

	// Clear removes the persisted record. Clearing an absent record is not
	// an error.
	Clear(ctx context.Context) error
}

// Store holds the current session in memory and keeps it in sync with a
// persistence backend. It is constructed once per process and passed by
// reference to every consumer. At most one session is current at a time;
// nil means unauthenticated.
type Store struct {
	mu       sync.Mutex
	backend  Backend
	logger   *slog.Logger
	current  *Session
	hydrated bool
}

// NewStore creates a Store over the given backend. The persisted record is
// not read until the first access.
func NewStore(backend Backend, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger,
	}
}

// Current returns a copy of the active session, or nil when unauthenticated.
// The first call hydrates the in-memory state from the backend; a missing or
// unparseable record is treated as no session.
func (s *Store) Current(ctx context.Context) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrate(ctx)
	if s.current == nil {
		return nil
	}
	sess := *s.current
	return &sess
}

// Token implements api.TokenSource. It returns the current bearer token, or
// an empty string when no session is active.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrate(context.Background())
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Login makes sess the current session, replacing any prior one, and
// persists it. The in-memory state changes only after the record is saved so
// that memory and backend stay in sync.
func (s *Store) Login(ctx context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrate(ctx)
	if err := s.persist(ctx, &sess); err != nil {
		return err
	}
	s.current = &sess
	return nil
}

// Logout clears the in-memory session and removes the persisted record.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrate(ctx)
	if err := s.backend.Clear(ctx); err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}
	s.current = nil
	return nil
}

// UpdateProfile merges the supplied fields into the current session and
// re-persists it. Unset fields keep their prior values. Returns ErrNoSession
// when called unauthenticated.
func (s *Store) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrate(ctx)
	if s.current == nil {
		return ErrNoSession
	}

	merged := *s.current
	if update.ID != nil {
		merged.ID = *update.ID
	}
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}

	if err := s.persist(ctx, &merged); err != nil {
		return err
	}
	s.current = &merged
	return nil
}

// hydrate loads the persisted record into memory exactly once. Callers must
// hold the mutex.
func (s *Store) hydrate(ctx context.Context) {
	if s.hydrated {
		return
	}
	s.hydrated = true

	record, err := s.backend.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("failed to load session record", "error", err)
		}
		return
	}

	var sess Session
	if err := json.Unmarshal(record, &sess); err != nil {
		s.logger.Warn("discarding corrupt session record", "error", err)
		return
	}
	s.current = &sess
}

func (s *Store) persist(ctx context.Context, sess *Session) error {
	record, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	if err := s.backend.Save(ctx, record); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}
