package controllers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/dtos"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/forms"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/services"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

type ProfileController struct {
	profiles services.ProfileService
	auth     services.AuthService
	accounts services.AccountService
}

func NewProfileController(
	profiles services.ProfileService,
	auth services.AuthService,
	accounts services.AccountService,
) *ProfileController {
	return &ProfileController{profiles: profiles, auth: auth, accounts: accounts}
}

// -----------------------------------------------------------------------------
// POST /actions/profile/add
// -----------------------------------------------------------------------------
func (c *ProfileController) AddProfile(w http.ResponseWriter, r *http.Request) {
	handleForm(w, r, "AddProfile", c.auth.Signup)
}

// -----------------------------------------------------------------------------
// POST /actions/profile/edit
// -----------------------------------------------------------------------------
func (c *ProfileController) EditProfile(w http.ResponseWriter, r *http.Request) {
	handleForm(w, r, "EditProfile", c.accounts.EditProfile)
}

// -----------------------------------------------------------------------------
// GET /actions/profile/list
// -----------------------------------------------------------------------------
func (c *ProfileController) ListProfiles(w http.ResponseWriter, r *http.Request) {
	var params dtos.ProfileListParams
	if err := forms.DecodeValues(r.URL.Query(), &params); err != nil {
		utils.HandleAppError(w, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Invalid query",
			Err:        err,
		})
		return
	}
	respondResult(w, r, "ListProfiles", c.profiles.List(r.Context(), params))
}

// -----------------------------------------------------------------------------
// GET /actions/profile/detail/{id}
// -----------------------------------------------------------------------------
func (c *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Missing profile id", nil,
		)
		return
	}
	respondResult(w, r, "GetProfile", c.profiles.Detail(r.Context(), id))
}
