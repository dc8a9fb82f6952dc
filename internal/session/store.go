// Package session owns the authentication token and identity for the
// process. It is the single writer of durable auth state; every other
// component reads through its accessors.
package session

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/inkwell/inkwell-client/internal/types"
)

// ErrEmptyToken is returned when Establish is called without a token.
var ErrEmptyToken = errors.New("session: empty token")

// Slot is the durable single-slot storage behind the store. Last write
// wins; there is no transaction log.
type Slot interface {
	Load() (types.Session, error)
	Save(types.Session) error
	Clear() error
}

// Store holds the one live session per process. Zero value is not usable;
// construct with New.
type Store struct {
	mu   sync.Mutex
	sess types.Session
	slot Slot

	subscribers []func()
}

// New constructs a Store over the given durable slot.
func New(slot Slot) *Store {
	if slot == nil {
		slot = NopSlot{}
	}
	return &Store{slot: slot}
}

// Init rehydrates the session from durable storage. A missing or partial
// slot leaves the session empty. Idempotent; call once per process.
func (s *Store) Init() error {
	sess, err := s.slot.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.Present() {
		s.sess = sess
	}
	return nil
}

// Establish persists token and identity durably and in memory.
func (s *Store) Establish(token, email string) error {
	if token == "" {
		return ErrEmptyToken
	}
	sess := types.Session{Token: token, Email: email}
	if err := s.slot.Save(sess); err != nil {
		return err
	}
	s.mu.Lock()
	s.sess = sess
	s.mu.Unlock()
	return nil
}

// Clear removes token and identity from durable storage and memory, then
// notifies subscribers. Clearing an already-empty session is a no-op for
// state but still notifies, so listeners react uniformly to explicit
// logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.sess = types.Session{}
	subs := append([]func(){}, s.subscribers...)
	s.mu.Unlock()

	err := s.slot.Clear()
	notify(subs)
	return err
}

// Invalidate is the dispatcher's 401 path: it tears the session down and
// notifies subscribers only when a live session existed, so several
// concurrent 401s produce exactly one notification.
func (s *Store) Invalidate() {
	s.mu.Lock()
	had := s.sess.Present()
	s.sess = types.Session{}
	subs := append([]func(){}, s.subscribers...)
	s.mu.Unlock()

	if !had {
		return
	}
	if err := s.slot.Clear(); err != nil {
		log.Warn().Err(err).Msg("session: clearing durable slot on invalidation")
	}
	notify(subs)
}

// CurrentToken returns the bearer token, or "" when unauthenticated.
// Never blocks on storage.
func (s *Store) CurrentToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.Token
}

// Current returns a copy of the live session.
func (s *Store) Current() types.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

// Subscribe registers fn to run after the session is invalidated or
// cleared. Callbacks run synchronously, after the session state and
// durable slot have already been wiped.
func (s *Store) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}

// NopSlot is a Slot that persists nothing. Useful for tests and for
// callers that keep sessions purely in memory.
type NopSlot struct{}

func (NopSlot) Load() (types.Session, error) { return types.Session{}, nil }
func (NopSlot) Save(types.Session) error     { return nil }
func (NopSlot) Clear() error                 { return nil }
