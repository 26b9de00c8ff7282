package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio_api/internal/common"
	"portfolio_api/internal/common/security"
	"portfolio_api/internal/domain/model"
	"portfolio_api/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name           string `json:"name"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password produce the same failure so callers cannot probe which
// accounts exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", common.NewError(common.ErrBadRequest, "Please provide email and password")
	}

	user, err := s.userRepo.FindByEmailWithHash(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	user.PasswordHash = "" // Clear before returning
	return user, token, nil
}

// GetSelf re-reads the user from storage rather than trusting the copy the
// authentication gate cached in the request context.
func (s *AuthService) GetSelf(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update: only fields present in the request
// overwrite the stored values, everything else is left untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.ProfilePicture != "" {
		user.ProfilePicture = req.ProfilePicture
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the current password before deriving and storing a
// new hash. This is the only code path that touches the password column, so
// an already-hashed value can never be hashed twice by an unrelated save.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return common.NewError(common.ErrBadRequest, "Please provide current and new password")
	}
	if len(req.NewPassword) < 6 {
		return common.NewError(common.ErrBadRequest, "New password must be at least 6 characters long")
	}

	user, err := s.userRepo.FindByIDWithHash(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewError(common.ErrNotFound, "User not found")
		}
		return fmt.Errorf("failed to fetch user: %w", err)
	}

	if !security.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return common.NewError(common.ErrUnauthorized, "Current password is incorrect")
	}

	newHash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// AdminProfile returns the public overview of the first admin account, or
// nil when no admin has been seeded yet. The missing-admin case is not an
// error; the handler renders it as a success:false payload with status 200.
func (s *AuthService) AdminProfile(ctx context.Context) (*model.AdminProfile, error) {
	admin, err := s.userRepo.FindFirstAdmin(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin profile: %w", err)
	}
	profile := admin.AdminProfile()
	return &profile, nil
}
