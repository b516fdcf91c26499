package impl

import (
	"context"
	"log/slog"

	deliverycontext "matjip/internal/delivery/context"
	"matjip/internal/domain/entity"
	domainerrors "matjip/internal/domain/errors"
	"matjip/internal/domain/repository"
	"matjip/internal/domain/service"
	"matjip/internal/errors"
	"matjip/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultListingLimit = 20
	maxListingLimit     = 100
)

// listingService implements the ListingUsecase interface.
type listingService struct {
	listings repository.ListingRepository
	identity service.IdentityProvider
	qrcode   service.QRCodeService
	logger   *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	Listings repository.ListingRepository
	Identity service.IdentityProvider
	QRCode   service.QRCodeService
	Logger   *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		listings: params.Listings,
		identity: params.Identity,
		qrcode:   params.QRCode,
		logger:   params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OpenDraft starts a create session, or an edit session seeded from the stored listing.
func (srv *listingService) OpenDraft(ctx context.Context, listingID *int64) (*usecase.EditSession, error) {
	if listingID == nil {
		return usecase.NewCreateSession(), nil
	}

	identity, err := srv.identity.CurrentUser(ctx)
	if err != nil {
		return nil, domainerrors.ErrAuthFailed.WrapMessage(err.Error())
	}

	listing, err := srv.GetListing(ctx, *listingID)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != identity.UserID {
		srv.log(ctx).Warn("Edit refused for listing owned by another user",
			slog.Int64("listing_id", listing.ID),
			slog.String("user_id", identity.UserID.String()),
		)

		return nil, domainerrors.ErrListingForbidden
	}

	return usecase.NewEditSession(listing), nil
}

// GetListing retrieves one listing
func (srv *listingService) GetListing(ctx context.Context, id int64) (*entity.Listing, error) {
	listing, err := srv.listings.FindListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return listing, nil
}

// ListListings retrieves the listing index
func (srv *listingService) ListListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error) {
	if filter.Location != "" && !filter.Location.IsValid() {
		return nil, domainerrors.ErrInvalidListingValue.WithDetails("location")
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultListingLimit
	case filter.Limit > maxListingLimit:
		filter.Limit = maxListingLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	listings, err := srv.listings.FindListings(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings")
	}

	return listings, nil
}

// ListMyListings retrieves the listings written by the current user
func (srv *listingService) ListMyListings(ctx context.Context) ([]*entity.Listing, error) {
	identity, err := srv.identity.CurrentUser(ctx)
	if err != nil {
		return nil, domainerrors.ErrAuthFailed.WrapMessage(err.Error())
	}

	listings, err := srv.listings.FindListingsByOwner(ctx, identity.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings by owner")
	}

	return listings, nil
}

// ListingShareQR renders the share QR code of an existing listing
func (srv *listingService) ListingShareQR(ctx context.Context, id int64) ([]byte, error) {
	if _, err := srv.GetListing(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateListingQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return png, nil
}
