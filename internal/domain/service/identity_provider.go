package service

import (
	"context"

	"matjip/internal/domain/entity"
)

// IdentityProvider resolves the actor behind the current request.
type IdentityProvider interface {
	// CurrentUser returns the authenticated identity, or an error when no user is signed in.
	CurrentUser(ctx context.Context) (*entity.Identity, error)
}
