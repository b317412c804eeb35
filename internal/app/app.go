package app

import (
	"errors"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/api"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/config"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/services"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/utils"
)

// App struct holds references to config, the backend client & services.
type App struct {
	Config         *config.Config
	Client         *api.Client
	ProfileService services.ProfileService
	AuthService    services.AuthService
	AccountService services.AccountService
	LikeService    services.LikeService
	ReviewService  services.ReviewService
}

// NewApp sets up the core application context. There is no storage; every
// service talks to the backend through one client.
func NewApp(cfg *config.Config) (*App, error) {
	utils.Logger.Info("Initializing client-service App")

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewAppWithClient(cfg, client), nil
}

// NewAppWithClient wires the services around an existing client.
func NewAppWithClient(cfg *config.Config, client *api.Client) *App {
	profiles := services.NewProfileService(client)
	auth := services.NewAuthService(client, profiles)

	return &App{
		Config:         cfg,
		Client:         client,
		ProfileService: profiles,
		AuthService:    auth,
		AccountService: services.NewAccountService(auth, profiles),
		LikeService:    services.NewLikeService(client),
		ReviewService:  services.NewReviewService(client),
	}
}

// Ping reports whether the app is wired to a backend.
func (a *App) Ping() error {
	if a.Client == nil || a.Client.BasePath == nil {
		return errors.New("backend client not configured")
	}
	return nil
}

// Close is a no-op here but included for consistency.
func (a *App) Close() {
	utils.Logger.Info("client-service app shutting down.")
}
