package controllers

import (
	"net/http"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/i18n"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/middleware"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

type I18nController struct{}

func NewI18nController() *I18nController {
	return &I18nController{}
}

// GET /actions/i18n/options?ns=
func (c *I18nController) GetOptions(w http.ResponseWriter, r *http.Request) {
	lng := middleware.LanguageFromContext(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, i18n.GetOptions(lng, r.URL.Query().Get("ns")))
}
