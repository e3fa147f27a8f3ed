package server

import (
	"fmt"

	"oracao/internal/models"
	"oracao/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Username     string `json:"username"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		NomeCompleto string `json:"nome_completo"`
		IsAdmin      bool   `json:"is_admin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Register(c.Context(), service.RegisterInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		NomeCompleto: req.NomeCompleto,
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	tok, err := s.tokens.Issue(user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   tok,
		"user":    user,
	})
}

// VerifyToken handles GET /api/auth/verify-token. Reaching the handler means
// AuthRequired already accepted the token, so just echo the account.
func (s *Server) VerifyToken(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"valid": true,
		"user":  s.currentUser(c),
	})
}

// GetProfile handles GET /api/auth/profile
func (s *Server) GetProfile(c *fiber.Ctx) error {
	return c.JSON(s.currentUser(c))
}

// UpdateProfile handles PUT /api/auth/profile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		NomeCompleto *string `json:"nome_completo"`
		Email        *string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:       s.actor(c).ID,
		NomeCompleto: req.NomeCompleto,
		Email:        req.Email,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// ChangePassword handles POST /api/auth/change-password
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.authService.ChangePassword(c.Context(), s.actor(c).ID, req.CurrentPassword, req.NewPassword); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

// ListUsers handles GET /api/auth/users (admin only)
func (s *Server) ListUsers(c *fiber.Ctx) error {
	users, err := s.authService.ListUsers(c.Context(), s.actor(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// ToggleAdmin handles PUT /api/auth/users/:id/admin (admin only)
func (s *Server) ToggleAdmin(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.authService.ToggleAdmin(c.Context(), s.actor(c), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	action := "revoked"
	if user.IsAdmin {
		action = "granted"
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Admin status %s for %s", action, user.Username),
		"user":    user,
	})
}
