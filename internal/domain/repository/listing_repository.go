// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"matjip/internal/domain/entity"
	"matjip/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for listing persistence.
var (
	// ErrListingNotFound is returned when a listing is not found, or not owned by the caller on update.
	ErrListingNotFound = errors.New("listing not found")
	// ErrEmptyPatch is returned when an update carries no fields.
	ErrEmptyPatch = errors.New("listing patch is empty")
)

// ListingRepository defines the interface for listing-related database operations.
type ListingRepository interface {
	// CreateListing inserts a new listing. ID and timestamps are written back onto listing.
	CreateListing(ctx context.Context, listing *entity.Listing) error

	// UpdateListing patches the listing with the given ID owned by ownerID and returns the stored row.
	// Returns ErrListingNotFound when no row matches both.
	UpdateListing(ctx context.Context, id int64, ownerID uuid.UUID, patch *entity.ListingPatch) (*entity.Listing, error)

	// FindListingByID retrieves a listing by its ID.
	FindListingByID(ctx context.Context, id int64) (*entity.Listing, error)

	// FindListings retrieves listings newest first.
	FindListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error)

	// FindListingsByOwner retrieves every listing written by ownerID, newest first.
	FindListingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error)
}
