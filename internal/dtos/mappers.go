package dtos

import (
	"github.com/EvgeniyBudaev/gravity/client-service/internal/forms"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

// Fallbacks for optional members the backend still expects as strings.
const (
	emptyText   = ""
	emptyNumber = "0"
)

// MapSignupToDto splits a signup submission into the profile payload and
// the account payload. Identity members go to both; credentials only to
// the account.
func MapSignupToDto(f forms.ProfileAddForm) (ProfileForm, SignupForm) {
	firstName := utils.ValOr(f.FirstName, emptyText)
	lastName := utils.ValOr(f.LastName, emptyText)

	profile := ProfileForm{
		UserName:         f.UserName,
		DisplayName:      f.DisplayName,
		Birthday:         f.Birthday,
		Gender:           f.Gender,
		SearchGender:     f.SearchGender,
		Location:         utils.ValOr(f.Location, emptyText),
		Description:      utils.ValOr(f.Description, emptyText),
		Height:           utils.ValOr(f.Height, emptyNumber),
		Weight:           utils.ValOr(f.Weight, emptyNumber),
		LookingFor:       f.LookingFor,
		TelegramID:       f.TelegramID,
		TelegramUserName: f.TelegramUserName,
		FirstName:        firstName,
		LastName:         lastName,
		LanguageCode:     f.LanguageCode,
		AllowsWriteToPm:  f.AllowsWriteToPm,
		QueryID:          f.QueryID,
		ChatID:           f.ChatID,
		Latitude:         f.Latitude,
		Longitude:        f.Longitude,
		AgeFrom:          f.AgeFrom,
		AgeTo:            f.AgeTo,
		Distance:         f.Distance,
		Page:             f.Page,
		Size:             f.Size,
		Images:           f.Image,
	}
	signup := SignupForm{
		Email:        utils.ValOr(f.Email, emptyText),
		MobileNumber: f.MobileNumber,
		Password:     f.Password,
		Username:     f.UserName,
		FirstName:    firstName,
		LastName:     lastName,
	}
	return profile, signup
}

// MapUpdateToDto splits an edit submission the same way. Every member is
// populated, absent optionals with their fallback.
func MapUpdateToDto(f forms.ProfileEditForm) (ProfileForm, UpdateForm) {
	profile := ProfileForm{
		ID:               f.ID,
		UserName:         f.UserName,
		DisplayName:      f.DisplayName,
		Birthday:         f.Birthday,
		Gender:           f.Gender,
		SearchGender:     utils.ValOr(f.SearchGender, emptyText),
		Location:         utils.ValOr(f.Location, emptyText),
		Description:      utils.ValOr(f.Description, emptyText),
		Height:           utils.ValOr(f.Height, emptyNumber),
		Weight:           utils.ValOr(f.Weight, emptyNumber),
		LookingFor:       utils.ValOr(f.LookingFor, emptyText),
		TelegramID:       f.TelegramID,
		TelegramUserName: f.TelegramUserName,
		FirstName:        f.FirstName,
		LastName:         f.LastName,
		LanguageCode:     f.LanguageCode,
		AllowsWriteToPm:  f.AllowsWriteToPm,
		QueryID:          f.QueryID,
		ChatID:           f.ChatID,
		Latitude:         f.Latitude,
		Longitude:        f.Longitude,
		AgeFrom:          f.AgeFrom,
		AgeTo:            f.AgeTo,
		Distance:         f.Distance,
		Page:             f.Page,
		Size:             f.Size,
		Images:           f.Image,
	}
	update := UpdateForm{
		Email:        f.Email,
		MobileNumber: f.MobileNumber,
		Username:     f.UserName,
		FirstName:    f.FirstName,
		LastName:     f.LastName,
	}
	return profile, update
}

func MapAddLike(f forms.AddLikeForm) AddLikeParams {
	return AddLikeParams{
		SessionID:   f.SessionID,
		LikedUserID: f.LikedUserID,
		Message:     utils.ValOr(f.Message, emptyText),
		Username:    utils.ValOr(f.Username, emptyText),
	}
}

func MapUpdateLike(f forms.UpdateLikeForm) UpdateLikeParams {
	return UpdateLikeParams{ID: f.ID, IsCancel: f.IsCancel, LikedUserID: f.LikedUserID}
}

func MapCancelLike(f forms.CancelLikeForm) UpdateLikeParams {
	return UpdateLikeParams{ID: f.ID, IsCancel: f.IsCancel, LikedUserID: f.LikedUserID}
}

// MapAddReview keeps an absent message as null.
func MapAddReview(f forms.AddReviewForm) AddReviewParams {
	return AddReviewParams{ProfileID: f.ProfileID, Message: f.Message, Rating: f.Rating}
}
