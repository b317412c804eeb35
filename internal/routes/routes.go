package routes

const (
	// Health
	Health = "/health"

	// Action endpoints served to the browser
	ActionLikeAdd       = "/actions/like/add"
	ActionLikeUpdate    = "/actions/like/update"
	ActionLikeCancel    = "/actions/like/cancel"
	ActionReviewAdd     = "/actions/review/add"
	ActionProfileAdd    = "/actions/profile/add"
	ActionProfileEdit   = "/actions/profile/edit"
	ActionProfileList   = "/actions/profile/list"
	ActionProfileDetail = "/actions/profile/detail/{id}"
	ActionI18nOptions   = "/actions/i18n/options"

	// Backend endpoints
	APIUserRegister  = "/api/v1/user/register"
	APIUserUpdate    = "/api/v1/user/update"
	APIProfileAdd    = "/api/v1/profile/add"
	APIProfileEdit   = "/api/v1/profile/edit"
	APIProfileList   = "/api/v1/profile/list"
	APIProfileDetail = "/api/v1/profile/detail/:id"
	APIReviewAdd     = "/api/v1/review/add"
	APILikeAdd       = "/api/v1/like/add"
	APILikeUpdate    = "/api/v1/like/update"
	APILikeDelete    = "/api/v1/like/delete"
)

// Page routes of the web client, used to build redirect locations.
const (
	Root             = "/"
	Login            = "/login"
	Logout           = "/logout"
	Register         = "/register"
	PermissionDenied = "/permission-denied"
	Reviews          = "/reviews"
	ReviewAdd        = "/review/add"
	ReviewDetail     = "/review/:id"
	ReviewEdit       = "/review/:id/edit"
	ProfileAdd       = "/profile/add"
	Profile          = "/profile/:id"
	ProfileEdit      = "/profile/:id/edit"
)
