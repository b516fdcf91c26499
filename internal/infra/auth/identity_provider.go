package auth

import (
	"context"

	deliverycontext "matjip/internal/delivery/context"
	"matjip/internal/domain/entity"
	"matjip/internal/domain/service"
	"matjip/internal/errors"
)

// ErrNoIdentity is returned when the request carries no authenticated user.
var ErrNoIdentity = errors.New("no authenticated user in request")

// contextIdentityProvider reads the identity the auth middleware stored in the request context.
type contextIdentityProvider struct{}

// NewContextIdentityProvider is the constructor for contextIdentityProvider.
func NewContextIdentityProvider() service.IdentityProvider {
	return &contextIdentityProvider{}
}

// CurrentUser returns the identity attached to ctx.
func (p *contextIdentityProvider) CurrentUser(ctx context.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(ctx)
	if !ok {
		return nil, ErrNoIdentity
	}

	return identity, nil
}
