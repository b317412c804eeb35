package forms

import (
	"net/http"
)

// Parse decodes, normalizes and validates one submission. A non-nil error
// means the body itself was unreadable; field failures are returned as data.
func Parse(r *http.Request, lng string, dst any) (FieldErrors, error) {
	if err := Decode(r, dst); err != nil {
		return nil, err
	}
	if err := Normalize(r.Context(), dst); err != nil {
		return nil, err
	}
	return Validate(dst, lng), nil
}
