package services

import (
	"context"
	"net/http"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/api"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/dtos"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/routes"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/schemas"
)

type ProfileResult = api.Result[dtos.Response[dtos.Profile]]

type ProfileService interface {
	List(ctx context.Context, params dtos.ProfileListParams) api.Result[dtos.Response[dtos.ProfileList]]
	Detail(ctx context.Context, id string) ProfileResult
	Add(ctx context.Context, p dtos.ProfileForm) ProfileResult
	Edit(ctx context.Context, p dtos.ProfileForm) ProfileResult
}

type profileService struct {
	client *api.Client
}

func NewProfileService(c *api.Client) ProfileService {
	return &profileService{client: c}
}

// List fetches one page of the feed. Only non-empty params reach the
// query string; with none the path carries no "?" at all.
func (s *profileService) List(
	ctx context.Context,
	params dtos.ProfileListParams,
) api.Result[dtos.Response[dtos.ProfileList]] {
	query, err := params.Query()
	if err != nil {
		return api.Fail[dtos.Response[dtos.ProfileList]](api.ErrorTypeServer, err)
	}
	path := routes.APIProfileList
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return api.Fetch[dtos.Response[dtos.ProfileList]](ctx, s.client, path, api.Options{
		Method: http.MethodGet,
		Schema: schemas.ProfileList,
	})
}

func (s *profileService) Detail(ctx context.Context, id string) ProfileResult {
	path := routes.Resolve(routes.APIProfileDetail, map[string]string{"id": id})
	return api.Fetch[dtos.Response[dtos.Profile]](ctx, s.client, path, api.Options{
		Method: http.MethodGet,
		Schema: schemas.Profile,
	})
}

func (s *profileService) Add(ctx context.Context, p dtos.ProfileForm) ProfileResult {
	return s.send(ctx, routes.APIProfileAdd, p)
}

func (s *profileService) Edit(ctx context.Context, p dtos.ProfileForm) ProfileResult {
	return s.send(ctx, routes.APIProfileEdit, p)
}

func (s *profileService) send(ctx context.Context, path string, p dtos.ProfileForm) ProfileResult {
	body, err := p.Multipart()
	if err != nil {
		return api.Fail[dtos.Response[dtos.Profile]](api.ErrorTypeServer, err)
	}
	return api.Fetch[dtos.Response[dtos.Profile]](ctx, s.client, path, api.Options{
		Method: http.MethodPost,
		Body:   body,
		Schema: schemas.Profile,
	})
}
