// Package validation holds the pure checks that gate a listing submission.
package validation

import (
	"strings"

	"matjip/internal/domain/entity"
	domainerrors "matjip/internal/domain/errors"
	"matjip/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Field names as reported in MissingFieldError, in the order they are checked.
const (
	FieldStoreName = "store_name"
	FieldAddress   = "address"
	FieldLocation  = "location"
	FieldRating    = "rating"
	FieldComment   = "comment"
)

var validate = New()

// New returns a validator with the listing rules registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("listing_location", func(fl validator.FieldLevel) bool {
		return entity.Location(fl.Field().String()).IsValid()
	})

	return v
}

// ValidateRequired fails with a MissingFieldError naming the first empty required field.
func ValidateRequired(draft *entity.Draft) error {
	f := draft.Fields
	required := []struct {
		name  string
		value any
	}{
		{FieldStoreName, f.StoreName},
		{FieldAddress, f.Address},
		{FieldLocation, string(f.Location)},
		{FieldRating, f.Rating},
		{FieldComment, f.Comment},
	}

	for _, r := range required {
		if err := validate.Var(r.value, "required"); err != nil {
			return domainerrors.NewMissingFieldError(r.name)
		}
	}

	return nil
}

// ValidateValues checks the ranges and enumerations of an otherwise complete draft.
func ValidateValues(draft *entity.Draft) error {
	err := validate.Struct(draft.Fields)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrInvalidListingValue.WithDetails(err.Error())
	}

	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		names = append(names, fe.Field()+":"+fe.Tag())
	}

	return domainerrors.ErrInvalidListingValue.WithDetails(strings.Join(names, ","))
}

// HasChanges reports whether the draft differs from the original snapshot or carries a new image.
func HasChanges(draft *entity.Draft, original entity.ListingFields) bool {
	return draft.PendingAsset != nil || !Diff(draft.Fields, original).IsEmpty()
}

// Diff returns a patch holding only the fields of current that differ from original.
func Diff(current, original entity.ListingFields) *entity.ListingPatch {
	patch := &entity.ListingPatch{}
	if current.StoreName != original.StoreName {
		patch.StoreName = &current.StoreName
	}
	if current.Address != original.Address {
		patch.Address = &current.Address
	}
	if current.Location != original.Location {
		patch.Location = &current.Location
	}
	if current.Rating != original.Rating {
		patch.Rating = &current.Rating
	}
	if current.Comment != original.Comment {
		patch.Comment = &current.Comment
	}

	return patch
}
