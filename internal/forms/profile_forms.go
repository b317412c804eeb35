package forms

import "mime/multipart"

// ProfileAddForm is the signup form. It carries both the account
// credentials and the profile attributes.
type ProfileAddForm struct {
	UserName         string  `form:"userName" mod:"trim" validate:"required"`
	DisplayName      string  `form:"displayName" mod:"trim" validate:"required"`
	Email            *string `form:"email" mod:"trim" validate:"omitempty,email"`
	MobileNumber     string  `form:"mobileNumber" mod:"trim" validate:"required"`
	Password         string  `form:"password" validate:"required,notblank"`
	PasswordConfirm  string  `form:"passwordConfirm" validate:"required,notblank,eqfield=Password"`
	Birthday         string  `form:"birthday" mod:"trim" validate:"required"`
	Gender           string  `form:"gender" mod:"trim" validate:"required"`
	SearchGender     string  `form:"searchGender" mod:"trim" validate:"required"`
	Location         *string `form:"location" mod:"trim"`
	Description      *string `form:"description" mod:"trim,sanitize"`
	Height           *string `form:"height" mod:"trim" validate:"omitempty,numeric"`
	Weight           *string `form:"weight" mod:"trim" validate:"omitempty,numeric"`
	LookingFor       string  `form:"lookingFor" mod:"trim" validate:"required"`
	TelegramID       string  `form:"telegramId" mod:"trim" validate:"required"`
	TelegramUserName string  `form:"telegramUserName" mod:"trim" validate:"required"`
	FirstName        *string `form:"firstName" mod:"trim"`
	LastName         *string `form:"lastName" mod:"trim"`
	LanguageCode     string  `form:"languageCode" mod:"trim" validate:"required"`
	AllowsWriteToPm  string  `form:"allowsWriteToPm" mod:"trim" validate:"required"`
	QueryID          string  `form:"queryId" mod:"trim" validate:"required"`
	ChatID           string  `form:"chatId" mod:"trim" validate:"required"`
	Latitude         string  `form:"latitude" mod:"trim" validate:"required"`
	Longitude        string  `form:"longitude" mod:"trim" validate:"required"`
	AgeFrom          string  `form:"ageFrom" mod:"trim" validate:"required"`
	AgeTo            string  `form:"ageTo" mod:"trim" validate:"required"`
	Distance         string  `form:"distance" mod:"trim" validate:"required"`
	Page             string  `form:"page" mod:"trim" validate:"required"`
	Size             string  `form:"size" mod:"trim" validate:"required"`

	Image []*multipart.FileHeader `form:"-"`
}

func (f *ProfileAddForm) setImages(files []*multipart.FileHeader) { f.Image = files }

// ProfileEditForm edits an existing profile and its account.
type ProfileEditForm struct {
	ID               string  `form:"id" mod:"trim" validate:"required"`
	UserName         string  `form:"userName" mod:"trim" validate:"required"`
	DisplayName      string  `form:"displayName" mod:"trim" validate:"required"`
	Email            string  `form:"email" mod:"trim" validate:"required,email"`
	MobileNumber     string  `form:"mobileNumber" mod:"trim" validate:"required"`
	Birthday         string  `form:"birthday" mod:"trim" validate:"required"`
	Gender           string  `form:"gender" mod:"trim" validate:"required"`
	SearchGender     *string `form:"searchGender" mod:"trim"`
	Location         *string `form:"location" mod:"trim"`
	Description      *string `form:"description" mod:"trim,sanitize"`
	Height           *string `form:"height" mod:"trim" validate:"omitempty,numeric"`
	Weight           *string `form:"weight" mod:"trim" validate:"omitempty,numeric"`
	LookingFor       *string `form:"lookingFor" mod:"trim"`
	TelegramID       string  `form:"telegramId" mod:"trim" validate:"required"`
	TelegramUserName string  `form:"telegramUserName" mod:"trim" validate:"required"`
	FirstName        string  `form:"firstName" mod:"trim" validate:"required"`
	LastName         string  `form:"lastName" mod:"trim" validate:"required"`
	LanguageCode     string  `form:"languageCode" mod:"trim" validate:"required"`
	AllowsWriteToPm  string  `form:"allowsWriteToPm" mod:"trim" validate:"required"`
	QueryID          string  `form:"queryId" mod:"trim" validate:"required"`
	ChatID           string  `form:"chatId" mod:"trim" validate:"required"`
	Latitude         string  `form:"latitude" mod:"trim" validate:"required"`
	Longitude        string  `form:"longitude" mod:"trim" validate:"required"`
	AgeFrom          string  `form:"ageFrom" mod:"trim" validate:"required"`
	AgeTo            string  `form:"ageTo" mod:"trim" validate:"required"`
	Distance         string  `form:"distance" mod:"trim" validate:"required"`
	Page             string  `form:"page" mod:"trim" validate:"required"`
	Size             string  `form:"size" mod:"trim" validate:"required"`

	Image []*multipart.FileHeader `form:"-"`
}

func (f *ProfileEditForm) setImages(files []*multipart.FileHeader) { f.Image = files }
