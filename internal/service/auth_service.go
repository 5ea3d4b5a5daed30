package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/simak-go-api/internal/repository"
)

// Sentinel errors for authentication use cases.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Session is the signed proof of a successful login handed to the client.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// AuthService manages accounts and issues signed session tokens.
type AuthService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (Session, error)
	EnsureDefaultAdmin(ctx context.Context) error
}

type authService struct {
	repo          repository.UserRepository
	secret        string
	ttl           time.Duration
	adminUsername string
	adminPassword string
	logger        zerolog.Logger
}

// NewAuthService constructs the auth service.
func NewAuthService(repo repository.UserRepository, secret string, ttl time.Duration, adminUsername, adminPassword string, logger zerolog.Logger) AuthService {
	return &authService{
		repo:          repo,
		secret:        secret,
		ttl:           ttl,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		logger:        logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	users, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	if _, exists := users[username]; exists {
		return ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users[username] = string(hash)
	if err := s.repo.Save(ctx, users); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Msg("account registered")

	return nil
}

func (s *authService) Login(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	users, err := s.repo.Load(ctx)
	if err != nil {
		return Session{}, err
	}

	hash, exists := users[username]
	if !exists {
		return Session{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	})

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return Session{}, err
	}

	return Session{Token: signed, Username: username, ExpiresAt: expiresAt}, nil
}

// EnsureDefaultAdmin seeds the configured administrator account when the
// user store does not contain it yet.
func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	users, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	if _, exists := users[s.adminUsername]; exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users[s.adminUsername] = string(hash)
	if err := s.repo.Save(ctx, users); err != nil {
		return err
	}

	s.logger.Warn().Str("username", s.adminUsername).Msg("default administrator account seeded, change its password")

	return nil
}
