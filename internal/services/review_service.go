package services

import (
	"context"
	"net/http"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/api"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/dtos"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/routes"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/schemas"
)

type ReviewResult = api.Result[dtos.Response[dtos.Review]]

type ReviewService interface {
	Add(ctx context.Context, p dtos.AddReviewParams) ReviewResult
}

type reviewService struct {
	client *api.Client
}

func NewReviewService(c *api.Client) ReviewService {
	return &reviewService{client: c}
}

func (s *reviewService) Add(ctx context.Context, p dtos.AddReviewParams) ReviewResult {
	return api.Fetch[dtos.Response[dtos.Review]](ctx, s.client, routes.APIReviewAdd, api.Options{
		Method: http.MethodPost,
		Body:   p,
		Schema: schemas.Review,
	})
}
