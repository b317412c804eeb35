package dtos

import (
	"fmt"
	"mime/multipart"
	"net/url"

	"github.com/go-playground/form/v4"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/api"
)

var encoder = newEncoder()

func newEncoder() *form.Encoder {
	e := form.NewEncoder()
	e.SetMode(form.ModeExplicit)
	return e
}

// ProfileForm is the multipart payload of profile/add and profile/edit.
// Every member except ID and the images is always sent.
type ProfileForm struct {
	ID               string `form:"id,omitempty"`
	UserName         string `form:"userName"`
	DisplayName      string `form:"displayName"`
	Birthday         string `form:"birthday"`
	Gender           string `form:"gender"`
	SearchGender     string `form:"searchGender"`
	Location         string `form:"location"`
	Description      string `form:"description"`
	Height           string `form:"height"`
	Weight           string `form:"weight"`
	LookingFor       string `form:"lookingFor"`
	TelegramID       string `form:"telegramId"`
	TelegramUserName string `form:"telegramUserName"`
	FirstName        string `form:"firstName"`
	LastName         string `form:"lastName"`
	LanguageCode     string `form:"languageCode"`
	AllowsWriteToPm  string `form:"allowsWriteToPm"`
	QueryID          string `form:"queryId"`
	ChatID           string `form:"chatId"`
	Latitude         string `form:"latitude"`
	Longitude        string `form:"longitude"`
	AgeFrom          string `form:"ageFrom"`
	AgeTo            string `form:"ageTo"`
	Distance         string `form:"distance"`
	Page             string `form:"page"`
	Size             string `form:"size"`

	// Images is nil when the submission carried none.
	Images []*multipart.FileHeader `form:"-"`
}

// Values encodes the text members.
func (p ProfileForm) Values() (url.Values, error) {
	values, err := encoder.Encode(p)
	if err != nil {
		return nil, fmt.Errorf("encode profile form: %w", err)
	}
	return values, nil
}

// Multipart builds the request body, reading every uploaded image.
func (p ProfileForm) Multipart() (*api.Multipart, error) {
	values, err := p.Values()
	if err != nil {
		return nil, err
	}
	body := api.NewMultipart(values)
	for _, fh := range p.Images {
		f, err := api.FileFromHeader(fh)
		if err != nil {
			return nil, err
		}
		body.AddFile("image", f)
	}
	return body, nil
}
