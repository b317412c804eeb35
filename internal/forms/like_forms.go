package forms

// AddLikeForm is submitted from a profile page to like its owner.
type AddLikeForm struct {
	SessionID   string  `form:"sessionId" mod:"trim" validate:"required"`
	LikedUserID string  `form:"likedUserId" mod:"trim" validate:"required"`
	Message     *string `form:"message" mod:"trim,sanitize"`
	Username    *string `form:"username" mod:"trim"`
}

// UpdateLikeForm restores a previously cancelled like.
type UpdateLikeForm struct {
	ID          string `form:"id" mod:"trim" validate:"required"`
	IsCancel    string `form:"isCancel" mod:"trim" validate:"required,oneof=0 1"`
	LikedUserID string `form:"likedUserId" mod:"trim" validate:"required"`
}

// CancelLikeForm withdraws a like.
type CancelLikeForm struct {
	ID          string `form:"id" mod:"trim" validate:"required"`
	IsCancel    string `form:"isCancel" mod:"trim" validate:"required,oneof=0 1"`
	LikedUserID string `form:"likedUserId" mod:"trim" validate:"required"`
}
