package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/projectboard/internal/client/credentials"
	"github.com/dmitrijs2005/projectboard/internal/logging"
)

type Session struct {
	store  credentials.Store
	logger logging.Logger

	// writeMu serializes mutations together with their storage calls.
	writeMu sync.Mutex
	state   atomic.Pointer[State]

	obsMu     sync.Mutex
	observers map[int]func(State)
	nextObsID int
}

func New(store credentials.Store, logger logging.Logger) *Session {
	s := &Session{
		store:     store,
		logger:    logger.With("component", "session"),
		observers: make(map[int]func(State)),
	}
	st := uninitialized()
	s.state.Store(&st)
	return s
}

// State returns the current snapshot.
func (s *Session) State() State {
	return *s.state.Load()
}

// Token returns the current bearer token, if any, without blocking.
func (s *Session) Token() (string, bool) {
	st := s.state.Load()
	return st.Token, st.IsAuthenticated
}

// Subscribe registers fn to be called after every state change. fn runs on
// the goroutine that made the change, after the session lock is released,
// so it may call back into the Session. The returned func unregisters fn.
func (s *Session) Subscribe(fn func(State)) func() {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

func (s *Session) notify(states []State) {
	if len(states) == 0 {
		return
	}

	s.obsMu.Lock()
	fns := make([]func(State), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.Unlock()

	for _, st := range states {
		for _, fn := range fns {
			fn(st)
		}
	}
}

// mutate runs fn under the write lock and delivers the states it published
// once the lock is released.
func (s *Session) mutate(fn func(publish func(State)) error) error {
	var published []State

	s.writeMu.Lock()
	err := fn(func(st State) {
		s.state.Store(&st)
		published = append(published, st)
	})
	s.writeMu.Unlock()

	s.notify(published)
	return err
}

// Initialize loads the persisted token. It must be called exactly once;
// later calls return ErrAlreadyInitialized. A storage failure is logged and
// leaves the session unauthenticated; it is not returned.
func (s *Session) Initialize(ctx context.Context) error {
	return s.mutate(func(publish func(State)) error {
		if s.state.Load().Phase() != PhaseUninitialized {
			return ErrAlreadyInitialized
		}
		publish(initializing())

		token, ok, err := s.store.Load(ctx)
		switch {
		case err != nil:
			s.logger.Error(ctx, "failed to load the token", "err", err)
			publish(unauthenticated())
		case ok && token != "":
			s.logger.Debug(ctx, "restored persisted token")
			publish(authenticated(token))
		default:
			publish(unauthenticated())
		}
		return nil
	})
}

// Login persists token and marks the session authenticated. On a storage
// failure the state is unchanged and the error wraps ErrPersist.
func (s *Session) Login(ctx context.Context, token string) error {
	return s.mutate(func(publish func(State)) error {
		if s.state.Load().IsInitializing {
			return ErrNotInitialized
		}
		if token == "" {
			return ErrEmptyToken
		}

		if err := s.store.Save(ctx, token); err != nil {
			s.logger.Error(ctx, "failed to save the token", "err", err)
			return fmt.Errorf("%w: %w", ErrPersist, err)
		}

		publish(authenticated(token))
		return nil
	})
}

// Logout removes the persisted token and marks the session unauthenticated.
// Logging out twice is fine. On a storage failure the state is unchanged
// and the error wraps ErrPersist.
func (s *Session) Logout(ctx context.Context) error {
	return s.mutate(func(publish func(State)) error {
		if s.state.Load().IsInitializing {
			return ErrNotInitialized
		}

		if err := s.store.Clear(ctx); err != nil {
			s.logger.Error(ctx, "failed to remove the token", "err", err)
			return fmt.Errorf("%w: %w", ErrPersist, err)
		}

		if s.state.Load().IsAuthenticated {
			publish(unauthenticated())
		}
		return nil
	})
}
