package services

import (
	"context"
	"net/http"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/api"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/dtos"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/routes"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/schemas"
)

type LikeResult = api.Result[dtos.Response[dtos.Like]]

type LikeService interface {
	Add(ctx context.Context, p dtos.AddLikeParams) LikeResult
	Update(ctx context.Context, p dtos.UpdateLikeParams) LikeResult
	Cancel(ctx context.Context, p dtos.UpdateLikeParams) LikeResult
}

type likeService struct {
	client *api.Client
}

func NewLikeService(c *api.Client) LikeService {
	return &likeService{client: c}
}

func (s *likeService) Add(ctx context.Context, p dtos.AddLikeParams) LikeResult {
	return s.call(ctx, http.MethodPost, routes.APILikeAdd, p)
}

func (s *likeService) Update(ctx context.Context, p dtos.UpdateLikeParams) LikeResult {
	return s.call(ctx, http.MethodPut, routes.APILikeUpdate, p)
}

func (s *likeService) Cancel(ctx context.Context, p dtos.UpdateLikeParams) LikeResult {
	return s.call(ctx, http.MethodPost, routes.APILikeDelete, p)
}

func (s *likeService) call(ctx context.Context, method, path string, body any) LikeResult {
	return api.Fetch[dtos.Response[dtos.Like]](ctx, s.client, path, api.Options{
		Method: method,
		Body:   body,
		Schema: schemas.Like,
	})
}
