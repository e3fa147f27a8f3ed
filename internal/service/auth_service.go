// Package service contains the business rules sitting between the HTTP
// handlers and the repositories.
package service

import (
	"context"

	"oracao/internal/authz"
	"oracao/internal/models"
	"oracao/internal/repository"
	"oracao/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService owns credential verification and user administration.
type AuthService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	NomeCompleto string
	IsAdmin      bool
}

type UpdateProfileInput struct {
	UserID       uint
	NomeCompleto *string
	Email        *string
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new user. The first user ever created is granted admin
// regardless of the requested flag.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("Username, email and password are required")
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Username already exists")
	}
	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Email already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		Password:     string(hashed),
		NomeCompleto: in.NomeCompleto,
		IsAdmin:      count == 0 || in.IsAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns the matching user. Failures are
// reported uniformly so callers never learn which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, models.NewValidationError("Username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies the provided fields. An email change is checked for
// uniqueness against other users.
func (s *AuthService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.NomeCompleto != nil {
		user.NomeCompleto = *in.NomeCompleto
	}
	if in.Email != nil {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, models.NewConflictError("Email already in use")
		}
		user.Email = *in.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, current, newPassword string) error {
	if current == "" || newPassword == "" {
		return models.NewValidationError("Current password and new password are required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return models.NewValidationError("Current password is incorrect")
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Password = string(hashed)
	return s.userRepo.Update(ctx, user)
}

// ListUsers returns every account. Admin only.
func (s *AuthService) ListUsers(ctx context.Context, actor authz.Actor) ([]models.User, error) {
	if !authz.CanManageUsers(actor) {
		return nil, models.NewForbiddenError("Admin access required")
	}
	return s.userRepo.List(ctx)
}

// ToggleAdmin flips the admin flag of the target user. Admins cannot change
// their own flag.
func (s *AuthService) ToggleAdmin(ctx context.Context, actor authz.Actor, targetID uint) (*models.User, error) {
	if !authz.CanToggleAdmin(actor, targetID) {
		if actor.IsAdmin && actor.ID == targetID {
			return nil, models.NewForbiddenError("You cannot change your own administrator status")
		}
		return nil, models.NewForbiddenError("Admin access required")
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.IsAdmin = !user.IsAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
