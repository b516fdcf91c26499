package auth

import (
	"context"
	"testing"

	deliverycontext "matjip/internal/delivery/context"
	"matjip/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextIdentityProvider_CurrentUser(t *testing.T) {
	provider := NewContextIdentityProvider()
	identity := &entity.Identity{UserID: uuid.New(), Email: "eater@example.com"}

	ctx := deliverycontext.WithIdentity(context.Background(), identity)
	got, err := provider.CurrentUser(ctx)

	require.NoError(t, err)
	assert.Same(t, identity, got)
}

func TestContextIdentityProvider_NoIdentity(t *testing.T) {
	provider := NewContextIdentityProvider()

	got, err := provider.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNoIdentity)
	assert.Nil(t, got)

	got, err = provider.CurrentUser(deliverycontext.WithIdentity(context.Background(), nil))
	assert.ErrorIs(t, err, ErrNoIdentity)
	assert.Nil(t, got)
}
