// Package session keeps checkout sessions in process memory.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"expo/config"
	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/repository"

	"go.uber.org/fx"
)

const sweepInterval = time.Minute

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// memoryStore implements repository.CheckoutSessionRepository.
// Sessions idle for longer than ttl are treated as missing and swept periodically.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*entity.CheckoutSession
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates the store and runs the sweeper for the app lifetime.
func NewMemoryStore(params Params) repository.CheckoutSessionRepository {
	store := newMemoryStore(params.Config.Session.TTL)

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.sweepLoop(sweepCtx, params.Logger, sweepInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelSweep()

			return nil
		},
	})

	return store
}

func newMemoryStore(ttl time.Duration) *memoryStore {
	return &memoryStore{
		sessions: make(map[string]*entity.CheckoutSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save stores or refreshes a session.
func (s *memoryStore) Save(_ context.Context, session *entity.CheckoutSession) error {
	if session == nil || session.ID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("session id is required")
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return nil
}

// Find returns the live session with the given ID.
func (s *memoryStore) Find(_ context.Context, id string) (*entity.CheckoutSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || s.expired(session) {
		return nil, domainerrors.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes a session.
func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	return nil
}

func (s *memoryStore) expired(session *entity.CheckoutSession) bool {
	if s.ttl <= 0 {
		return false
	}

	session.Lock()
	updated := session.UpdatedAt
	session.Unlock()

	return s.now().Sub(updated) > s.ttl
}

// sweep drops expired sessions and returns how many were removed.
func (s *memoryStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed
}

func (s *memoryStore) sweepLoop(ctx context.Context, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sweep(); removed > 0 {
				logger.Debug("Expired checkout sessions removed", slog.Int("count", removed))
			}
		}
	}
}
