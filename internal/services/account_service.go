package services

import (
	"context"

	"github.com/EvgeniyBudaev/gravity/client-service/internal/api"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/dtos"
	"github.com/EvgeniyBudaev/gravity/client-service/internal/forms"
)

// AccountService edits the account and the profile from one submission.
type AccountService interface {
	EditProfile(ctx context.Context, f forms.ProfileEditForm) ProfileResult
}

type accountService struct {
	auth     AuthService
	profiles ProfileService
}

func NewAccountService(auth AuthService, profiles ProfileService) AccountService {
	return &accountService{auth: auth, profiles: profiles}
}

func (s *accountService) EditProfile(ctx context.Context, f forms.ProfileEditForm) ProfileResult {
	profile, update := dtos.MapUpdateToDto(f)

	user := s.auth.UpdateAccount(ctx, update)
	if !user.OK() {
		return api.Forward[dtos.Response[dtos.Profile]](user)
	}
	return s.profiles.Edit(ctx, profile)
}
