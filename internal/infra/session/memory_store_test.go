package session

import (
	"context"
	"testing"
	"time"

	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveFindDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore(time.Hour)
	session := entity.NewCheckoutSession(time.Now())

	require.NoError(t, store.Save(ctx, session))

	found, err := store.Find(ctx, session.ID)
	require.NoError(t, err)
	assert.Same(t, session, found)

	require.NoError(t, store.Delete(ctx, session.ID))
	_, err = store.Find(ctx, session.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestMemoryStore_ExpiredSessionsAreMissing(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := newMemoryStore(time.Hour)
	store.now = func() time.Time { return now }

	stale := entity.NewCheckoutSession(now.Add(-2 * time.Hour))
	fresh := entity.NewCheckoutSession(now.Add(-time.Minute))
	require.NoError(t, store.Save(ctx, stale))
	require.NoError(t, store.Save(ctx, fresh))

	_, err := store.Find(ctx, stale.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))

	assert.Equal(t, 1, store.sweep())
	_, err = store.Find(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestMemoryStore_SaveRequiresID(t *testing.T) {
	err := newMemoryStore(time.Hour).Save(context.Background(), &entity.CheckoutSession{})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
