package entity

import "github.com/google/uuid"

// Draft is the in-progress editable copy of a Listing.
// A nil ListingID means the draft creates a new listing.
type Draft struct {
	ListingID    *int64
	Fields       ListingFields
	ImagePath    string        // Image reference carried over from the original snapshot.
	PendingAsset *PendingAsset // Image chosen in this session and not yet uploaded.
}

// IsEdit reports whether the draft edits an existing listing.
func (d *Draft) IsEdit() bool {
	return d.ListingID != nil
}

// NewDraftFromListing copies a fetched listing into a draft for editing.
func NewDraftFromListing(listing *Listing) *Draft {
	id := listing.ID

	return &Draft{
		ListingID: &id,
		Fields:    listing.Fields(),
		ImagePath: listing.ImagePath,
	}
}

// PendingAsset is a raw image payload attached to a draft.
type PendingAsset struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Asset is an uploaded image bound to a listing.
type Asset struct {
	Key string // Storage key inside the bucket.
	URL string // Public retrieval URL.
}

// Identity is the authenticated actor performing an operation.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}
