package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/B7A9F/exercices-api/internal/apperrors"
	"github.com/B7A9F/exercices-api/internal/auth"
	"github.com/B7A9F/exercices-api/internal/models"
	"github.com/B7A9F/exercices-api/internal/store"
	"github.com/B7A9F/exercices-api/internal/validation"
)

// UserHandler serves registration and login.
type UserHandler struct {
	users      store.UserStore
	issuer     *auth.TokenIssuer
	bcryptCost int
}

func NewUserHandler(users store.UserStore, issuer *auth.TokenIssuer, bcryptCost int) *UserHandler {
	return &UserHandler{users: users, issuer: issuer, bcryptCost: bcryptCost}
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("All fields must be filled")
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return apperrors.Validation("All fields must be filled")
	}
	if !validation.IsEmail(req.Email) {
		return apperrors.Validation("Email not valid")
	}
	if !validation.IsStrongPassword(req.Password) {
		return apperrors.Validation("Password not strong enough")
	}

	// Check-then-create: a concurrent duplicate registration can slip
	// through this window, the unique index is the backstop.
	_, err := h.users.GetUserByEmail(c.Context(), req.Email)
	if err == nil {
		return apperrors.Validation("Email already in use")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return apperrors.Internal()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		return apperrors.Internal()
	}

	user, err := h.users.CreateUser(c.Context(), req.Username, req.Email, string(hash))
	if err != nil {
		return apperrors.Internal()
	}

	token, err := h.issuer.Issue(user.ID, user.Username, user.Email)
	if err != nil {
		return apperrors.Internal()
	}
	c.Set("Cache-Control", "no-store")
	return c.Status(fiber.StatusOK).JSON(models.RegisterResponse{
		Email: user.Email,
		Token: token,
	})
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("All fields must be filled")
	}
	req.Email = strings.TrimSpace(req.Email)

	if req.Email == "" || req.Password == "" {
		return apperrors.Validation("All fields must be filled")
	}

	user, err := h.users.GetUserByEmail(c.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.Validation("Incorrect email")
	}
	if err != nil {
		return apperrors.Internal()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return apperrors.Validation("Incorrect password")
	}

	token, err := h.issuer.Issue(user.ID, user.Username, user.Email)
	if err != nil {
		return apperrors.Internal()
	}
	c.Set("Cache-Control", "no-store")
	return c.Status(fiber.StatusOK).JSON(models.LoginResponse{
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}
