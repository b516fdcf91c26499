// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Listing is one reviewed store, persisted in the 'store' table.
type Listing struct {
	ID        int64     `json:"id"`         // Assigned by the record store on insert; zero for an unsaved listing.
	OwnerID   uuid.UUID `json:"writer"`     // The user who created the listing. Never reassigned.
	StoreName string    `json:"store_name"` // The store's trade name.
	Address   string    `json:"address"`    // Street address of the store.
	Location  Location  `json:"location"`   // Neighborhood tag.
	Rating    int       `json:"star"`       // Rating from 1 to 5.
	Comment   string    `json:"comment"`    // Free-text review.
	ImagePath string    `json:"img_path"`   // Public URL of the listing image; empty when none is stored.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Fields returns the editable fields of the listing.
func (l *Listing) Fields() ListingFields {
	return ListingFields{
		StoreName: l.StoreName,
		Address:   l.Address,
		Location:  l.Location,
		Rating:    l.Rating,
		Comment:   l.Comment,
	}
}

// ListingFields are the user-editable fields shared by a Listing and a Draft.
type ListingFields struct {
	StoreName string   `json:"store_name" validate:"required,max=100"`
	Address   string   `json:"address" validate:"required,max=255"`
	Location  Location `json:"location" validate:"required,listing_location"`
	Rating    int      `json:"star" validate:"required,min=1,max=5"`
	Comment   string   `json:"comment" validate:"required,max=2000"`
}

// ListingPatch carries the fields to write on update. Nil fields are left untouched.
type ListingPatch struct {
	StoreName *string
	Address   *string
	Location  *Location
	Rating    *int
	Comment   *string
	ImagePath *string
}

// IsEmpty reports whether the patch would write nothing.
func (p *ListingPatch) IsEmpty() bool {
	return p.StoreName == nil && p.Address == nil && p.Location == nil &&
		p.Rating == nil && p.Comment == nil && p.ImagePath == nil
}

// Apply writes the non-nil patch fields onto listing.
func (p *ListingPatch) Apply(listing *Listing) {
	if p.StoreName != nil {
		listing.StoreName = *p.StoreName
	}
	if p.Address != nil {
		listing.Address = *p.Address
	}
	if p.Location != nil {
		listing.Location = *p.Location
	}
	if p.Rating != nil {
		listing.Rating = *p.Rating
	}
	if p.Comment != nil {
		listing.Comment = *p.Comment
	}
	if p.ImagePath != nil {
		listing.ImagePath = *p.ImagePath
	}
}

// ListingFilter narrows a listing query.
type ListingFilter struct {
	Location Location // Empty means every location.
	Limit    int
	Offset   int
}
