package service

import (
	"context"

	"github.com/Izanmg/streamevents/internal/cache"
	"github.com/Izanmg/streamevents/internal/models"
	"github.com/Izanmg/streamevents/internal/repository"
)

// UserService handles profile reads and updates.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries the editable profile fields. Username, email and
// role are deliberately absent: they cannot be changed through the profile.
type UpdateProfileInput struct {
	UserID      uint
	FirstName   *string
	LastName    *string
	DisplayName *string
	Bio         *string
	Avatar      *string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfileByUsername returns the public profile for a username, served
// cache-aside.
func (s *UserService) GetProfileByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	key := cache.UserProfileKey(username)

	err := cache.Aside(ctx, key, &user, cache.UserProfileTTL, func() error {
		found, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if found == nil {
			return models.NewNotFoundError("User", username)
		}
		user = *found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateProfile applies the provided fields. Nil pointers leave the current
// value untouched, so a client can clear a field by sending the empty string.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxNameLen = 150
	const maxBioLen = 500

	if in.FirstName != nil {
		if len(*in.FirstName) > maxNameLen {
			return nil, models.NewValidationError("First name too long (max 150 characters)")
		}
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		if len(*in.LastName) > maxNameLen {
			return nil, models.NewValidationError("Last name too long (max 150 characters)")
		}
		user.LastName = *in.LastName
	}
	if in.DisplayName != nil {
		if len(*in.DisplayName) > maxNameLen {
			return nil, models.NewValidationError("Display name too long (max 150 characters)")
		}
		user.DisplayName = *in.DisplayName
	}
	if in.Bio != nil {
		if len(*in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = *in.Bio
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
