package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/photofeed/backend/internal/middleware"
	"github.com/anonto42/photofeed/backend/internal/models"
	"github.com/anonto42/photofeed/backend/internal/repositories"
	"github.com/anonto42/photofeed/backend/internal/token"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	tokens         *token.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, tokens *token.Service) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		tokens:         tokens,
	}
}

// RegisterAuthRoutes registers authentication-related routes. The signup
// and signin routes are public; me and signout require a valid token.
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group, tokenAuth echo.MiddlewareFunc) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
	g.GET("/me", h.Me, tokenAuth)
	g.POST("/signout", h.SignOut, tokenAuth)
}

// Signup handles account creation with email and password
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Check if user with this email already exists
	if _, err := h.userRepository.GetUserByEmail(req.Email); err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "User with the same email already exists!")
	}

	// Hash the password; the plaintext is never persisted or logged
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := h.userRepository.CreateUser(user); err != nil {
		// The unique index catches a signup racing past the check above
		if errors.Is(err, repositories.ErrConflict) {
			return echo.NewHTTPError(http.StatusBadRequest, "User with the same email already exists!")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, user)
}

// SignIn handles authentication with email and password and mints a token
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SigninRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "User with this email does not exists!")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Password is incorrect!")
	}

	t, err := h.tokens.Issue(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": t, "user": user})
}

// Me returns the authenticated user together with their liked and saved
// relations
func (h *AuthHandler) Me(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	user, err := h.userRepository.GetUserWithRelations(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found!")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}

// SignOut acknowledges a sign-out. Tokens are stateless and cannot be
// revoked server-side; the client discards its copy.
func (h *AuthHandler) SignOut(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully signed out"})
}
