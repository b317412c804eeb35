package controllers

import (
	"context"
	"net/http"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/dtos"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/forms"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/services"
)

type LikeController struct {
	svc services.LikeService
}

func NewLikeController(s services.LikeService) *LikeController {
	return &LikeController{svc: s}
}

// -----------------------------------------------------------------------------
// POST /actions/like/add
// -----------------------------------------------------------------------------
func (c *LikeController) AddLike(w http.ResponseWriter, r *http.Request) {
	handleForm(w, r, "AddLike", func(ctx context.Context, f forms.AddLikeForm) services.LikeResult {
		return c.svc.Add(ctx, dtos.MapAddLike(f))
	})
}

// -----------------------------------------------------------------------------
// POST /actions/like/update
// -----------------------------------------------------------------------------
func (c *LikeController) UpdateLike(w http.ResponseWriter, r *http.Request) {
	handleForm(w, r, "UpdateLike", func(ctx context.Context, f forms.UpdateLikeForm) services.LikeResult {
		return c.svc.Update(ctx, dtos.MapUpdateLike(f))
	})
}

// -----------------------------------------------------------------------------
// POST /actions/like/cancel
// -----------------------------------------------------------------------------
func (c *LikeController) CancelLike(w http.ResponseWriter, r *http.Request) {
	handleForm(w, r, "CancelLike", func(ctx context.Context, f forms.CancelLikeForm) services.LikeResult {
		return c.svc.Cancel(ctx, dtos.MapCancelLike(f))
	})
}
