// Package constants holds string constants shared across layers.
package constants

const (
	// PubSubProviderLocal publishes events as HTTP push requests to a local endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// RouteIndex is the listing index page, shown after a listing is created.
	RouteIndex = "/"
	// RouteMyPage is the owner's management page, shown after a listing is updated.
	RouteMyPage = "/mypage"
)

const (
	// EventListingCreated is published after a new listing row is committed.
	EventListingCreated = "listing.created"
	// EventListingUpdated is published after an existing listing row is patched.
	EventListingUpdated = "listing.updated"
)

const (
	// EnvLocal is the development environment name; push authentication is skipped there.
	EnvLocal = "local"
)

const (
	// ShareQRPrefix is the asset key prefix of pre-rendered listing share codes.
	ShareQRPrefix = "qr"
)
