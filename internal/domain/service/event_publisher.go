package service

import (
	"context"
)

// ListingEvent is published after a listing submission completes
type ListingEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`                 // listing.created or listing.updated
	ListingID int64  `json:"listing_id"`
	OwnerID   string `json:"owner_id"`
	Location  string `json:"location"`
	ImagePath string `json:"img_path,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingEvent publishes a listing event for downstream consumers
	PublishListingEvent(ctx context.Context, event *ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
