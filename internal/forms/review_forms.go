package forms

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// AddReviewForm rates a profile. Rating "0" means no star was picked.
type AddReviewForm struct {
	ProfileID string  `form:"profileId" mod:"trim" validate:"required"`
	Message   *string `form:"message" mod:"trim,sanitize"`
	Rating    string  `form:"rating" mod:"trim" validate:"required,numeric"`
}

// reviewRatingRule fails a rating that parses to zero, on the rating key.
func reviewRatingRule(sl validator.StructLevel) {
	f := sl.Current().Interface().(AddReviewForm)
	if f.Rating == "" {
		return
	}
	if n, err := strconv.ParseFloat(f.Rating, 64); err == nil && n == 0 {
		sl.ReportError(f.Rating, FieldRating, "Rating", "nonzero", "")
	}
}
