package services

import (
	"context"
	"net/http"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/api"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/dtos"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/forms"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/routes"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/schemas"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

type UserResult = api.Result[dtos.Response[dtos.User]]

type AuthService interface {
	// Signup registers the account, then creates its profile.
	Signup(ctx context.Context, f forms.ProfileAddForm) ProfileResult
	UpdateAccount(ctx context.Context, u dtos.UpdateForm) UserResult
}

type authService struct {
	client   *api.Client
	profiles ProfileService
}

func NewAuthService(c *api.Client, profiles ProfileService) AuthService {
	return &authService{client: c, profiles: profiles}
}

func (s *authService) Signup(ctx context.Context, f forms.ProfileAddForm) ProfileResult {
	profile, signup := dtos.MapSignupToDto(f)

	user := api.Fetch[dtos.Response[dtos.User]](ctx, s.client, routes.APIUserRegister, api.Options{
		Method: http.MethodPost,
		Body:   signup,
		Schema: schemas.User,
	})
	if !user.OK() {
		return api.Forward[dtos.Response[dtos.Profile]](user)
	}
	utils.Logger.WithField("username", signup.Username).Debug("Account registered, creating profile")

	return s.profiles.Add(ctx, profile)
}

func (s *authService) UpdateAccount(ctx context.Context, u dtos.UpdateForm) UserResult {
	return api.Fetch[dtos.Response[dtos.User]](ctx, s.client, routes.APIUserUpdate, api.Options{
		Method: http.MethodPut,
		Body:   u,
		Schema: schemas.User,
	})
}
