package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/app"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/config"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/controllers"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/middleware"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/routes"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

func main() {
	appName := config.AppName
	if appName == "" {
		appName = config.DefaultAppName
	}
	utils.InitLogger(appName)

	// 1) Config, fail fast on missing API_URL / NODE_ENV
	cfg, err := config.LoadConfig(config.EnvPrefix)
	if err != nil {
		utils.Logger.Fatal("Config error: ", err)
	}

	// 2) Core application (backend client, services)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("App init error: ", err)
	}
	defer application.Close()

	// 3) Router + CORS
	handler := newHandler(application)

	utils.Logger.Infof("Starting %s on :%s (%s)", cfg.AppName, cfg.AppPort, cfg.NodeEnv)
	if err := http.ListenAndServe(":"+cfg.AppPort, handler); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}

func newHandler(application *app.App) http.Handler {
	cfg := application.Config

	// Controllers
	healthCtrl := controllers.NewHealthController(application)
	i18nCtrl := controllers.NewI18nController()
	likeCtrl := controllers.NewLikeController(application.LikeService)
	reviewCtrl := controllers.NewReviewController(application.ReviewService)
	profileCtrl := controllers.NewProfileController(
		application.ProfileService,
		application.AuthService,
		application.AccountService,
	)

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	actions := router.NewRoute().Subrouter()
	actions.Use(middleware.LanguageMiddleware)
	actions.Use(middleware.SessionMiddleware(time.Now))
	actions.HandleFunc(routes.ActionLikeAdd, likeCtrl.AddLike).Methods(http.MethodPost)
	actions.HandleFunc(routes.ActionLikeUpdate, likeCtrl.UpdateLike).Methods(http.MethodPost)
	actions.HandleFunc(routes.ActionLikeCancel, likeCtrl.CancelLike).Methods(http.MethodPost)
	actions.HandleFunc(routes.ActionReviewAdd, reviewCtrl.AddReview).Methods(http.MethodPost)
	actions.HandleFunc(routes.ActionProfileAdd, profileCtrl.AddProfile).Methods(http.MethodPost)
	actions.HandleFunc(routes.ActionProfileEdit, profileCtrl.EditProfile).Methods(http.MethodPost)
	actions.HandleFunc(routes.ActionProfileList, profileCtrl.ListProfiles).Methods(http.MethodGet)
	actions.HandleFunc(routes.ActionProfileDetail, profileCtrl.GetProfile).Methods(http.MethodGet)
	actions.HandleFunc(routes.ActionI18nOptions, i18nCtrl.GetOptions).Methods(http.MethodGet)

	var origins []string
	if cfg.AppUrl != "" {
		origins = append(origins, cfg.AppUrl)
	}
	if !cfg.IsProduction() || len(origins) == 0 {
		origins = append(origins, utils.CORSLowSecurityAllowedOriginLocalhost)
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Accept-Language"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}
