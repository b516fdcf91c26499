package validation

import (
	"testing"

	"matjip/internal/domain/entity"
	domainerrors "matjip/internal/domain/errors"
	"matjip/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeFields() entity.ListingFields {
	return entity.ListingFields{
		StoreName: "Kimchi House",
		Address:   "123 Main",
		Location:  entity.LocationHongdae,
		Rating:    5,
		Comment:   "great",
	}
}

func TestValidateRequired_Complete(t *testing.T) {
	draft := &entity.Draft{Fields: completeFields()}

	require.NoError(t, ValidateRequired(draft))
}

func TestValidateRequired_FirstMissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *entity.ListingFields)
		want   string
	}{
		{"store name", func(f *entity.ListingFields) { f.StoreName = "" }, FieldStoreName},
		{"address", func(f *entity.ListingFields) { f.Address = "" }, FieldAddress},
		{"location", func(f *entity.ListingFields) { f.Location = "" }, FieldLocation},
		{"rating", func(f *entity.ListingFields) { f.Rating = 0 }, FieldRating},
		{"comment", func(f *entity.ListingFields) { f.Comment = "" }, FieldComment},
		{"address and comment reports address", func(f *entity.ListingFields) {
			f.Address = ""
			f.Comment = ""
		}, FieldAddress},
		{"everything reports store name", func(f *entity.ListingFields) {
			*f = entity.ListingFields{}
		}, FieldStoreName},
		{"location and rating reports location", func(f *entity.ListingFields) {
			f.Location = ""
			f.Rating = 0
		}, FieldLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := completeFields()
			tt.mutate(&fields)

			err := ValidateRequired(&entity.Draft{Fields: fields})
			require.Error(t, err)

			missing, ok := errors.AsType[*domainerrors.MissingFieldError](err)
			require.True(t, ok)
			assert.Equal(t, tt.want, missing.Field)
			assert.Equal(t, "MISSING_FIELD", missing.ErrorCode())
		})
	}
}

func TestValidateValues(t *testing.T) {
	draft := &entity.Draft{Fields: completeFields()}
	require.NoError(t, ValidateValues(draft))

	draft.Fields.Rating = 6
	err := ValidateValues(draft)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidListingValue))

	draft.Fields = completeFields()
	draft.Fields.Location = "부산"
	err = ValidateValues(draft)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidListingValue))

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Contains(t, appErr.Details(), "Location:listing_location")
}

func TestHasChanges(t *testing.T) {
	original := completeFields()

	t.Run("identical without asset", func(t *testing.T) {
		draft := &entity.Draft{Fields: original}
		assert.False(t, HasChanges(draft, original))
	})

	t.Run("pending asset only", func(t *testing.T) {
		draft := &entity.Draft{
			Fields:       original,
			PendingAsset: &entity.PendingAsset{Data: []byte{0x1}},
		}
		assert.True(t, HasChanges(draft, original))
	})

	fieldChanges := map[string]func(f *entity.ListingFields){
		"store name": func(f *entity.ListingFields) { f.StoreName = "Bibim" },
		"address":    func(f *entity.ListingFields) { f.Address = "9 Side St" },
		"location":   func(f *entity.ListingFields) { f.Location = entity.LocationGangnam },
		"rating":     func(f *entity.ListingFields) { f.Rating = 3 },
		"comment":    func(f *entity.ListingFields) { f.Comment = "meh" },
	}

	for name, mutate := range fieldChanges {
		t.Run(name, func(t *testing.T) {
			current := original
			mutate(&current)

			assert.True(t, HasChanges(&entity.Draft{Fields: current}, original))
			// Swapping the roles gives the same answer.
			assert.True(t, HasChanges(&entity.Draft{Fields: original}, current))
		})
	}
}

func TestDiff_OnlyChangedFields(t *testing.T) {
	original := completeFields()
	current := original
	current.Rating = 4

	patch := Diff(current, original)

	require.NotNil(t, patch.Rating)
	assert.Equal(t, 4, *patch.Rating)
	assert.Nil(t, patch.StoreName)
	assert.Nil(t, patch.Address)
	assert.Nil(t, patch.Location)
	assert.Nil(t, patch.Comment)
	assert.Nil(t, patch.ImagePath)
	assert.False(t, patch.IsEmpty())

	assert.True(t, Diff(original, original).IsEmpty())
}
