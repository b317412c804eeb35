package controllers

import (
	"context"
	"net/http"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/dtos"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/forms"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/services"
)

type ReviewController struct {
	svc services.ReviewService
}

func NewReviewController(s services.ReviewService) *ReviewController {
	return &ReviewController{svc: s}
}

// POST /actions/review/add
func (c *ReviewController) AddReview(w http.ResponseWriter, r *http.Request) {
	handleForm(w, r, "AddReview", func(ctx context.Context, f forms.AddReviewForm) services.ReviewResult {
		return c.svc.Add(ctx, dtos.MapAddReview(f))
	})
}
