package impl

import (
	"context"
	"log/slog"
	"testing"

	"matjip/internal/domain/entity"
	domainerrors "matjip/internal/domain/errors"
	"matjip/internal/domain/repository"
	"matjip/internal/errors"
	mockRepo "matjip/internal/mocks/repository"
	mockService "matjip/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingServiceFixtures struct {
	service  *listingService
	listings *mockRepo.MockListingRepository
	identity *mockService.MockIdentityProvider
	qrcode   *mockService.MockQRCodeService
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	listings := mockRepo.NewMockListingRepository(t)
	identity := mockService.NewMockIdentityProvider(t)
	qrcode := mockService.NewMockQRCodeService(t)

	srv, ok := NewListingService(ListingServiceParams{
		Listings: listings,
		Identity: identity,
		QRCode:   qrcode,
		Logger:   slog.New(slog.DiscardHandler),
	}).(*listingService)
	require.True(t, ok)

	return listingServiceFixtures{
		service:  srv,
		listings: listings,
		identity: identity,
		qrcode:   qrcode,
	}
}

func TestListingService_OpenDraft_Create(t *testing.T) {
	fx := createTestListingService(t)

	session, err := fx.service.OpenDraft(context.Background(), nil)

	require.NoError(t, err)
	assert.False(t, session.IsEdit())
	assert.Equal(t, entity.ListingFields{}, session.Draft.Fields)
}

func TestListingService_OpenDraft_Edit(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	stored := storedListing(ownerID)

	fx.identity.EXPECT().CurrentUser(ctx).Return(&entity.Identity{UserID: ownerID}, nil).Once()
	fx.listings.EXPECT().FindListingByID(ctx, stored.ID).Return(stored, nil).Once()

	session, err := fx.service.OpenDraft(ctx, &stored.ID)

	require.NoError(t, err)
	assert.True(t, session.IsEdit())
	assert.Equal(t, stored.Fields(), session.Draft.Fields)
	assert.Equal(t, stored.ImagePath, session.Draft.ImagePath)

	// The snapshot is a copy, edits to the draft do not leak into it.
	fields := session.Draft.Fields
	fields.Comment = "changed"
	session.SetFields(fields)
	assert.Equal(t, "great", session.OriginalFields().Comment)
}

func TestListingService_OpenDraft_Errors(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		setup   func(fx listingServiceFixtures, ctx context.Context, id int64)
		wantErr error
	}{
		{
			name: "not authenticated",
			setup: func(fx listingServiceFixtures, ctx context.Context, _ int64) {
				fx.identity.EXPECT().CurrentUser(ctx).Return(nil, errors.New("no token")).Once()
			},
			wantErr: domainerrors.ErrAuthFailed,
		},
		{
			name: "listing missing",
			setup: func(fx listingServiceFixtures, ctx context.Context, id int64) {
				fx.identity.EXPECT().CurrentUser(ctx).Return(&entity.Identity{UserID: ownerID}, nil).Once()
				fx.listings.EXPECT().FindListingByID(ctx, id).Return(nil, repository.ErrListingNotFound).Once()
			},
			wantErr: domainerrors.ErrListingNotFound,
		},
		{
			name: "owned by someone else",
			setup: func(fx listingServiceFixtures, ctx context.Context, id int64) {
				fx.identity.EXPECT().CurrentUser(ctx).Return(&entity.Identity{UserID: ownerID}, nil).Once()
				fx.listings.EXPECT().FindListingByID(ctx, id).Return(storedListing(uuid.New()), nil).Once()
			},
			wantErr: domainerrors.ErrListingForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t)
			ctx := context.Background()
			id := int64(42)
			tt.setup(fx, ctx, id)

			session, err := fx.service.OpenDraft(ctx, &id)

			assert.Nil(t, session)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestListingService_GetListing_RepositoryError(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.listings.EXPECT().FindListingByID(ctx, int64(7)).Return(nil, errors.New("db down")).Once()

	_, err := fx.service.GetListing(ctx, 7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.False(t, errors.Is(err, domainerrors.ErrListingNotFound))
}

func TestListingService_ListListings(t *testing.T) {
	tests := []struct {
		name   string
		filter entity.ListingFilter
		want   entity.ListingFilter
	}{
		{
			name:   "defaults",
			filter: entity.ListingFilter{},
			want:   entity.ListingFilter{Limit: defaultListingLimit},
		},
		{
			name:   "clamped",
			filter: entity.ListingFilter{Location: entity.LocationSeongsu, Limit: 1000, Offset: -5},
			want:   entity.ListingFilter{Location: entity.LocationSeongsu, Limit: maxListingLimit},
		},
		{
			name:   "passthrough",
			filter: entity.ListingFilter{Location: entity.LocationItaewon, Limit: 10, Offset: 30},
			want:   entity.ListingFilter{Location: entity.LocationItaewon, Limit: 10, Offset: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t)
			ctx := context.Background()
			result := []*entity.Listing{storedListing(uuid.New())}

			fx.listings.EXPECT().FindListings(ctx, tt.want).Return(result, nil).Once()

			got, err := fx.service.ListListings(ctx, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, result, got)
		})
	}
}

func TestListingService_ListListings_InvalidLocation(t *testing.T) {
	fx := createTestListingService(t)

	_, err := fx.service.ListListings(context.Background(), entity.ListingFilter{Location: "부산"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidListingValue))
}

func TestListingService_ListMyListings(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	result := []*entity.Listing{storedListing(ownerID)}

	fx.identity.EXPECT().CurrentUser(ctx).Return(&entity.Identity{UserID: ownerID}, nil).Once()
	fx.listings.EXPECT().FindListingsByOwner(ctx, ownerID).Return(result, nil).Once()

	got, err := fx.service.ListMyListings(ctx)

	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestListingService_ListingShareQR(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	stored := storedListing(uuid.New())
	png := []byte("\x89PNG")

	fx.listings.EXPECT().FindListingByID(ctx, stored.ID).Return(stored, nil).Once()
	fx.qrcode.EXPECT().GenerateListingQR(stored.ID).Return(png, nil).Once()

	got, err := fx.service.ListingShareQR(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestListingService_ListingShareQR_NotFound(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.listings.EXPECT().FindListingByID(ctx, int64(99)).Return(nil, repository.ErrListingNotFound).Once()

	_, err := fx.service.ListingShareQR(ctx, 99)

	assert.True(t, errors.Is(err, domainerrors.ErrListingNotFound))
}
