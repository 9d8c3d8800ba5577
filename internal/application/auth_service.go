package application

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/officebook/service-booking/internal/auth"
	"github.com/officebook/service-booking/internal/domain"
	userDomain "github.com/officebook/service-booking/internal/domain/user"
)

// AuthService verifies credentials against stored user documents and
// issues access tokens.
type AuthService struct {
	repo   userDomain.Repository
	jwt    *auth.JWTManager
	logger *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(repo userDomain.Repository, jwt *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{repo: repo, jwt: jwt, logger: logger}
}

// LoginResult is returned on a successful authentication.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// Login checks the password against the stored bcrypt hash and issues a
// token. Unknown users and wrong passwords produce the same error, so the
// response does not leak which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			s.logger.Info("login rejected", zap.String("username", username))
			return nil, domain.NewValidationError("invalid username or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		s.logger.Info("login rejected", zap.String("username", username))
		return nil, domain.NewValidationError("invalid username or password")
	}

	token, err := s.jwt.Generate(u.Username, u.Name, u.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login succeeded", zap.String("username", username))
	return &LoginResult{
		Token:    token,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
		Email:    u.Email,
	}, nil
}

// CreateUser hashes the password and persists a new user document. An
// existing username is refused, never overwritten.
func (s *AuthService) CreateUser(ctx context.Context, u userDomain.User, rawPassword string) error {
	if u.Username == "" {
		return domain.NewValidationError("username is required")
	}
	if rawPassword == "" {
		return domain.NewValidationError("password is required")
	}

	_, err := s.repo.FindByUsername(ctx, u.Username)
	if err == nil {
		return domain.NewConflictError("user already exists: " + u.Username)
	}
	if !domain.IsNotFound(err) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	if u.CreatedAt == "" {
		u.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.repo.Save(ctx, &u); err != nil {
		return err
	}
	s.logger.Info("user created", zap.String("username", u.Username), zap.String("role", u.Role))
	return nil
}

// ListUsers returns every user account with password hashes blanked.
func (s *AuthService) ListUsers(ctx context.Context) ([]userDomain.User, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}
