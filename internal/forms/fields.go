// Package forms decodes and validates browser form submissions.
//
// Every form is a typed record whose `form` tags are the stable wire keys
// the browser submits. Optional members are pointers so that an absent
// field stays distinguishable from an empty one until DTO mapping applies
// its fallbacks.
package forms

// Wire keys shared across forms.
const (
	FieldID               = "id"
	FieldSessionID        = "sessionId"
	FieldLikedUserID      = "likedUserId"
	FieldMessage          = "message"
	FieldUsername         = "username"
	FieldIsCancel         = "isCancel"
	FieldProfileID        = "profileId"
	FieldRating           = "rating"
	FieldUserName         = "userName"
	FieldDisplayName      = "displayName"
	FieldEmail            = "email"
	FieldMobileNumber     = "mobileNumber"
	FieldPassword         = "password"
	FieldPasswordConfirm  = "passwordConfirm"
	FieldBirthday         = "birthday"
	FieldGender           = "gender"
	FieldSearchGender     = "searchGender"
	FieldLocation         = "location"
	FieldDescription      = "description"
	FieldHeight           = "height"
	FieldWeight           = "weight"
	FieldLookingFor       = "lookingFor"
	FieldImage            = "image"
	FieldTelegramID       = "telegramId"
	FieldTelegramUserName = "telegramUserName"
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldLanguageCode     = "languageCode"
	FieldAllowsWriteToPm  = "allowsWriteToPm"
	FieldQueryID          = "queryId"
	FieldChatID           = "chatId"
	FieldLatitude         = "latitude"
	FieldLongitude        = "longitude"
	FieldAgeFrom          = "ageFrom"
	FieldAgeTo            = "ageTo"
	FieldDistance         = "distance"
	FieldPage             = "page"
	FieldSize             = "size"
)
