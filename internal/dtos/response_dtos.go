package dtos

// Response is the success envelope every backend endpoint wraps its data in.
type Response[T any] struct {
	Data       *T     `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
}

// Like is the record of one like between two profiles.
type Like struct {
	ID          uint64 `json:"id"`
	ProfileID   uint64 `json:"profileId"`
	LikedUserID string `json:"likedUserId"`
	IsLiked     bool   `json:"isLiked"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type Review struct {
	ID         uint64  `json:"id"`
	ProfileID  uint64  `json:"profileId"`
	Message    *string `json:"message"`
	Rating     float64 `json:"rating"`
	HasDeleted bool    `json:"hasDeleted"`
	HasEdited  bool    `json:"hasEdited"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

type Image struct {
	ID  uint64 `json:"id,omitempty"`
	URL string `json:"url"`
}

type Profile struct {
	ID          uint64  `json:"id"`
	SessionID   string  `json:"sessionId"`
	DisplayName string  `json:"displayName"`
	Birthday    string  `json:"birthday"`
	Gender      string  `json:"gender"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	IsOnline    bool    `json:"isOnline"`
	LastOnline  string  `json:"lastOnline"`
	Images      []Image `json:"images"`
}

type Navigator struct {
	Distance float64 `json:"distance"`
}

// ProfileListItem is the short card shown in the profile feed.
type ProfileListItem struct {
	ID         uint64     `json:"id"`
	IsOnline   bool       `json:"isOnline"`
	LastOnline string     `json:"lastOnline"`
	Image      *Image     `json:"image"`
	Navigator  *Navigator `json:"navigator"`
}

// ProfileList is one page of the profile feed.
type ProfileList struct {
	HasPrevious bool              `json:"hasPrevious"`
	HasNext     bool              `json:"hasNext"`
	Page        int               `json:"page"`
	Size        int               `json:"size"`
	TotalItems  int               `json:"totalItems"`
	TotalPages  int               `json:"totalPages"`
	Content     []ProfileListItem `json:"content"`
}

// User is the account record returned by register and update.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
