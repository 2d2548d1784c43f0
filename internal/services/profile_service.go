package services

import (
	"context"

	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/marcela981/Somos-Server/internal/repository"
)

type UserProfileUpdater interface {
	UpdatePartial(ctx context.Context, userID int64, req repository.UpdateUserProfileInput) (*models.UserProfile, error)
}

type ProfileService struct {
	userProfileRepo UserProfileUpdater
}

func NewProfileService(userProfileRepo UserProfileUpdater) *ProfileService {
	return &ProfileService{userProfileRepo: userProfileRepo}
}

func (s *ProfileService) UpdateUserProfile(ctx context.Context, userID int64, req repository.UpdateUserProfileInput) (*models.UserProfile, error) {
	return s.userProfileRepo.UpdatePartial(ctx, userID, req)
}
