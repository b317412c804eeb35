package forms

import (
	"context"
	"html"
	"reflect"
	"strings"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/microcosm-cc/bluemonday"
)

var (
	conform = newConform()
	strict  = bluemonday.StrictPolicy()
)

func newConform() *mold.Transformer {
	t := modifiers.New()
	t.Register("sanitize", sanitize)
	return t
}

// sanitize strips markup from free text, leaving plain text behind.
func sanitize(_ context.Context, fl mold.FieldLevel) error {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return nil
	}
	f.SetString(SanitizeText(f.String()))
	return nil
}

// SanitizeText removes every HTML element from s and unescapes the entities
// the policy leaves behind.
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Normalize trims strings and sanitizes free text fields in place.
func Normalize(ctx context.Context, dst any) error {
	return conform.Struct(ctx, dst)
}
