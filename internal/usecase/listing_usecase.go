package usecase

import (
	"context"

	"matjip/internal/domain/entity"
	"matjip/internal/domain/service"
)

// SubmitOutcome reports how a single submit attempt ended.
// Err is nil only when Completed is true.
type SubmitOutcome struct {
	Completed bool
	Listing   *entity.Listing
	Route     string
	Notice    entity.Notice
	Err       error
}

// SubmissionUsecase drives a listing draft through validation, upload and persistence.
type SubmissionUsecase interface {
	// Submit runs one submit attempt for the session and reports the result through
	// notifier and navigator. It never returns an error to the caller; the outcome
	// carries it for inspection. The session is back in StateIdle when Submit returns.
	Submit(ctx context.Context, session *EditSession, notifier service.Notifier, navigator service.Navigator) *SubmitOutcome
}

// ListingUsecase defines the read side of listings and the opening of edit sessions.
type ListingUsecase interface {
	// OpenDraft starts an edit session. A nil listingID opens an empty create session;
	// otherwise the listing is fetched, its ownership checked against the current user,
	// and its state kept as the original snapshot.
	OpenDraft(ctx context.Context, listingID *int64) (*EditSession, error)

	// GetListing retrieves one listing for the detail page
	GetListing(ctx context.Context, id int64) (*entity.Listing, error)

	// ListListings retrieves the listing index, newest first
	ListListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error)

	// ListMyListings retrieves the current user's listings
	ListMyListings(ctx context.Context) ([]*entity.Listing, error)

	// ListingShareQR renders a QR code that opens the listing detail page
	ListingShareQR(ctx context.Context, id int64) ([]byte, error)
}
