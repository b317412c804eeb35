package dtos

import (
	"fmt"
	"net/url"
)

// SignupForm is the account payload of POST /api/v1/user/register.
type SignupForm struct {
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
	Username     string `json:"username"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
}

// UpdateForm is the account payload of PUT /api/v1/user/update.
type UpdateForm struct {
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Username     string `json:"username"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
}

type AddLikeParams struct {
	SessionID   string `json:"sessionId"`
	LikedUserID string `json:"likedUserId"`
	Message     string `json:"message,omitempty"`
	Username    string `json:"username,omitempty"`
}

// UpdateLikeParams serves both like/update and like/delete.
type UpdateLikeParams struct {
	ID          string `json:"id"`
	IsCancel    string `json:"isCancel"`
	LikedUserID string `json:"likedUserId"`
}

type AddReviewParams struct {
	ProfileID string  `json:"profileId"`
	Message   *string `json:"message"`
	Rating    string  `json:"rating"`
}

// ProfileListParams filters the profile feed. Empty members are left out of
// the query string.
type ProfileListParams struct {
	SessionID    string `form:"sessionId,omitempty"`
	Latitude     string `form:"latitude,omitempty"`
	Longitude    string `form:"longitude,omitempty"`
	AgeFrom      string `form:"ageFrom,omitempty"`
	AgeTo        string `form:"ageTo,omitempty"`
	Distance     string `form:"distance,omitempty"`
	SearchGender string `form:"searchGender,omitempty"`
	LookingFor   string `form:"lookingFor,omitempty"`
	Page         string `form:"page,omitempty"`
	Size         string `form:"size,omitempty"`
}

// Query encodes the present members only. A zero value yields no values.
func (p ProfileListParams) Query() (url.Values, error) {
	values, err := encoder.Encode(p)
	if err != nil {
		return nil, fmt.Errorf("encode profile list params: %w", err)
	}
	return values, nil
}
