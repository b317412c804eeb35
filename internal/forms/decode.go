package forms

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/form/v4"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

// MaxMemory bounds the in-memory part of a multipart submission; larger
// files spill to disk.
const MaxMemory = 32 << 20

var decoder = form.NewDecoder()

type imageSetter interface {
	setImages([]*multipart.FileHeader)
}

// Decode parses an urlencoded or multipart submission into dst. Image files
// are attached when dst accepts them, whether one file or many was sent.
func Decode(r *http.Request, dst any) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(MaxMemory); err != nil {
			return fmt.Errorf("%w: %v", utils.ErrInvalidBody, err)
		}
	} else if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidBody, err)
	}

	if err := DecodeValues(r.Form, dst); err != nil {
		return err
	}
	if s, ok := dst.(imageSetter); ok && r.MultipartForm != nil {
		if files := r.MultipartForm.File[FieldImage]; len(files) > 0 {
			s.setImages(files)
		}
	}
	return nil
}

// DecodeValues fills dst from already parsed values.
func DecodeValues(values url.Values, dst any) error {
	if err := decoder.Decode(dst, values); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidBody, err)
	}
	return nil
}
