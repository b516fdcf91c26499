package usecase

import (
	"testing"

	"matjip/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSession(t *testing.T) {
	session := NewCreateSession()

	require.NotNil(t, session.Draft)
	assert.False(t, session.IsEdit())
	assert.False(t, session.Draft.IsEdit())
	assert.Equal(t, StateIdle, session.State())
	assert.Equal(t, entity.ListingFields{}, session.OriginalFields())
}

func TestNewEditSession_SnapshotIsIsolated(t *testing.T) {
	original := &entity.Listing{
		ID:        7,
		OwnerID:   uuid.New(),
		StoreName: "Kimchi House",
		Address:   "123 Main",
		Location:  entity.LocationHongdae,
		Rating:    3,
		Comment:   "good",
		ImagePath: "https://cdn.example.com/public/a_7.png",
	}

	session := NewEditSession(original)
	require.True(t, session.IsEdit())
	require.NotNil(t, session.Draft.ListingID)
	assert.Equal(t, int64(7), *session.Draft.ListingID)
	assert.Equal(t, original.ImagePath, session.Draft.ImagePath)

	fields := session.Draft.Fields
	fields.Rating = 4
	session.SetFields(fields)
	original.Comment = "changed after open"

	assert.Equal(t, 3, session.OriginalFields().Rating)
	assert.Equal(t, "good", session.OriginalFields().Comment)
	assert.Equal(t, 4, session.Draft.Fields.Rating)
}

func TestEditSession_BeginGuardsConcurrentSubmits(t *testing.T) {
	session := NewCreateSession()

	require.True(t, session.Begin())
	assert.Equal(t, StateValidating, session.State())
	assert.False(t, session.Begin())

	session.Advance(StateUploadingAsset)
	assert.False(t, session.Begin())

	session.Reset()
	assert.Equal(t, StateIdle, session.State())
	assert.True(t, session.Begin())
}

func TestSubmitState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "persisting_record", StatePersistingRecord.String())
	assert.Equal(t, "unknown", SubmitState(99).String())
}
