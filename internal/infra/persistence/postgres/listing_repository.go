// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"matjip/internal/domain/entity"
	domainerrors "matjip/internal/domain/errors"
	"matjip/internal/domain/repository"
	"matjip/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// CreateListing inserts a new row and copies the generated ID and timestamps back onto listing.
func (repo *listingRepository) CreateListing(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		return translateWriteError(err, "failed to create listing")
	}

	// Update the entity with generated values
	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// UpdateListing writes the patch onto the row with the given ID written by ownerID and returns the stored row.
func (repo *listingRepository) UpdateListing(
	ctx context.Context,
	id int64,
	ownerID uuid.UUID,
	patch *entity.ListingPatch,
) (*entity.Listing, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, repository.ErrEmptyPatch
	}

	var listingM model.StoreModel
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.StoreModel{}).
			Where("id = ? AND writer = ?", id, ownerID).
			Updates(patchColumns(patch))
		if result.Error != nil {
			return translateWriteError(result.Error, "failed to update listing")
		}

		if result.RowsAffected == 0 {
			return repository.ErrListingNotFound
		}

		return errors.Wrap(tx.Where("id = ?", id).First(&listingM).Error, "failed to reload listing")
	})
	if err != nil {
		return nil, err
	}

	return toListingDomain(&listingM), nil
}

// FindListingByID retrieves a listing by its ID.
// It reads from the primary: edit snapshots and the detail page right after a submit must not see replica lag.
func (repo *listingRepository) FindListingByID(ctx context.Context, id int64) (*entity.Listing, error) {
	var listingM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// FindListings retrieves the newest listings, optionally narrowed to one location.
func (repo *listingRepository) FindListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error) {
	var listingModels []*model.StoreModel

	query := repo.db.WithContext(ctx)
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location.String())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings")
	}

	return toListingDomains(listingModels), nil
}

// FindListingsByOwner retrieves every listing written by ownerID, newest first.
func (repo *listingRepository) FindListingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	var listingModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("writer = ?", ownerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by owner")
	}

	return toListingDomains(listingModels), nil
}

// translateWriteError converts PostgreSQL errors to domain errors
func translateWriteError(err error, details string) error {
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrInvalidListingValue.WrapMessage(details)
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrInvalidListingValue.WrapMessage("missing required listing information")
	}

	// For other database errors, return a generic database error
	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

// patchColumns converts a patch to the column map written by UPDATE.
func patchColumns(patch *entity.ListingPatch) map[string]any {
	columns := make(map[string]any, 6)
	if patch.StoreName != nil {
		columns["store_name"] = *patch.StoreName
	}
	if patch.Address != nil {
		columns["address"] = *patch.Address
	}
	if patch.Location != nil {
		columns["location"] = patch.Location.String()
	}
	if patch.Rating != nil {
		columns["star"] = *patch.Rating
	}
	if patch.Comment != nil {
		columns["comment"] = *patch.Comment
	}
	if patch.ImagePath != nil {
		columns["img_path"] = *patch.ImagePath
	}

	return columns
}

// toListingDomain converts a GORM StoreModel to a domain Listing entity.
func toListingDomain(data *model.StoreModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:        data.ID,
		OwnerID:   data.Writer,
		StoreName: data.StoreName,
		Address:   data.Address,
		Location:  entity.Location(data.Location),
		Rating:    data.Star,
		Comment:   data.Comment,
		ImagePath: data.ImgPath,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toListingDomains(data []*model.StoreModel) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(data))
	for _, listingM := range data {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings
}

// fromListingDomain converts a domain Listing entity to a GORM StoreModel.
func fromListingDomain(data *entity.Listing) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:        data.ID,
		Writer:    data.OwnerID,
		StoreName: data.StoreName,
		Address:   data.Address,
		Location:  data.Location.String(),
		Star:      data.Rating,
		Comment:   data.Comment,
		ImgPath:   data.ImagePath,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
