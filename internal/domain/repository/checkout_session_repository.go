package repository

import (
	"context"

	"expo/internal/domain/entity"
)

// CheckoutSessionRepository keeps checkout sessions between requests.
type CheckoutSessionRepository interface {
	// Save stores or refreshes a session.
	Save(ctx context.Context, session *entity.CheckoutSession) error

	// Find returns the live session with the given ID.
	// Returns domainerrors.ErrSessionNotFound when missing or expired.
	Find(ctx context.Context, id string) (*entity.CheckoutSession, error)

	// Delete removes a session.
	Delete(ctx context.Context, id string) error
}
