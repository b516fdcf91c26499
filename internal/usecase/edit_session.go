package usecase

import (
	"sync/atomic"

	"matjip/internal/domain/entity"
)

// SubmitState is a step of the submission state machine.
type SubmitState int32

const (
	StateIdle SubmitState = iota
	StateValidating
	StateResolvingIdentity
	StateUploadingAsset
	StatePersistingRecord
	StateCompleted
)

func (s SubmitState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateResolvingIdentity:
		return "resolving_identity"
	case StateUploadingAsset:
		return "uploading_asset"
	case StatePersistingRecord:
		return "persisting_record"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// EditSession owns a draft and, in edit mode, the original snapshot it is compared against.
// Only one submit may run per session at a time.
type EditSession struct {
	Draft    *entity.Draft
	Original *entity.Listing // nil in create mode

	state atomic.Int32
}

// NewCreateSession opens a session for a brand-new listing.
func NewCreateSession() *EditSession {
	return &EditSession{Draft: &entity.Draft{}}
}

// NewEditSession opens a session editing original. The snapshot is copied so later
// draft edits never leak into it.
func NewEditSession(original *entity.Listing) *EditSession {
	snapshot := *original

	return &EditSession{
		Draft:    entity.NewDraftFromListing(&snapshot),
		Original: &snapshot,
	}
}

// IsEdit reports whether the session edits an existing listing.
func (s *EditSession) IsEdit() bool {
	return s.Original != nil
}

// OriginalFields returns the snapshot fields used for change detection.
func (s *EditSession) OriginalFields() entity.ListingFields {
	if s.Original == nil {
		return entity.ListingFields{}
	}

	return s.Original.Fields()
}

// SetFields replaces the draft's editable fields.
func (s *EditSession) SetFields(fields entity.ListingFields) {
	s.Draft.Fields = fields
}

// AttachAsset sets the image to upload on the next submit.
func (s *EditSession) AttachAsset(asset *entity.PendingAsset) {
	s.Draft.PendingAsset = asset
}

// State returns the current submission state.
func (s *EditSession) State() SubmitState {
	return SubmitState(s.state.Load())
}

// Begin moves an idle session into validation. It returns false when a submit is already running.
func (s *EditSession) Begin() bool {
	return s.state.CompareAndSwap(int32(StateIdle), int32(StateValidating))
}

// Advance records the next state of a running submit.
func (s *EditSession) Advance(next SubmitState) {
	s.state.Store(int32(next))
}

// Reset returns the session to idle so a new attempt can start.
func (s *EditSession) Reset() {
	s.state.Store(int32(StateIdle))
}
