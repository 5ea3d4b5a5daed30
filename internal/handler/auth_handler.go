package handler

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/simak-go-api/internal/dto"
	"github.com/noah-isme/simak-go-api/internal/middleware"
	"github.com/noah-isme/simak-go-api/internal/models"
	"github.com/noah-isme/simak-go-api/internal/service"
	"github.com/noah-isme/simak-go-api/internal/utils"
)

// AuthHandler wires the public landing, login, register and logout endpoints.
type AuthHandler struct {
	service   service.AuthService
	validator *validator.Validate
	appName   string
	logger    zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service service.AuthService, validator *validator.Validate, appName string, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validator,
		appName:   appName,
		logger:    logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register attaches the public routes to the application.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Get("/", h.home)
	router.Get("/login", h.loginForm)
	router.Post("/login", h.login)
	router.Get("/register", h.registerForm)
	router.Post("/register", h.register)
	router.Get("/logout", h.logout)
}

func (h *AuthHandler) home(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "welcome", fiber.Map{
		"service":      h.appName,
		"jurusan_list": models.Departments,
	})
}

func (h *AuthHandler) loginForm(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "login form", fiber.Map{
		"fields": []string{"username", "password"},
	})
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var form dto.CredentialsForm
	if err := c.BodyParser(&form); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(form); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "username and password are required")
	}

	session, err := h.service.Login(c.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid username or password")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to log in")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to log in")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return utils.SendSuccess(c, "login successful", dto.SessionResponse{
		Username:  session.Username,
		ExpiresAt: session.ExpiresAt,
	})
}

func (h *AuthHandler) registerForm(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "register form", fiber.Map{
		"fields": []string{"username", "password"},
	})
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var form dto.CredentialsForm
	if err := c.BodyParser(&form); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(form); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "username and password are required")
	}

	if err := h.service.Register(c.Context(), form.Username, form.Password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return utils.SendError(c, fiber.StatusConflict, "username already taken")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to register account")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to register account")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "account registered", fiber.Map{
		"username": form.Username,
	})
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/login", fiber.StatusFound)
}
