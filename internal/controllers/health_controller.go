package controllers

import (
	"net/http"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/app"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/dtos"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.Ping(); err != nil {
		utils.Logger.WithError(err).Error("client-service unhealthy")
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Service unhealthy",
			nil,
			err,
		)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
