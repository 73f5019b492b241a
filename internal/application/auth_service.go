package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/enrollhub/backend/internal/domain/entity"
	repo "github.com/enrollhub/backend/internal/domain/repository"
	"github.com/enrollhub/backend/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService verifies credentials and issues session tokens.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Logger: logger}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// IssuedToken is a freshly signed session token with its fixed expiry.
// There is no refresh mechanism; clients re-login after expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// Signup stores a new account with a hashed password and issues a token.
// Field presence and password length are enforced at the binding layer;
// duplicate emails surface as ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, IssuedToken, error) {
	if existing, err := s.Repo.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, IssuedToken{}, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, IssuedToken{}, err
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     in.Role,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		// Two signups can race past the pre-check; the unique index settles it.
		if errors.Is(err, repo.ErrConflict) {
			return nil, IssuedToken{}, ErrEmailTaken
		}
		return nil, IssuedToken{}, err
	}

	tok, err := s.issueToken(u)
	if err != nil {
		return nil, IssuedToken{}, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user signed up")
	}
	return u, tok, nil
}

// Login authenticates email/password and issues a fresh token carrying the
// stored role.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, IssuedToken, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, IssuedToken{}, ErrInvalidCredentials
	}
	if !helpers.CheckPassword(u.Password, password) {
		return nil, IssuedToken{}, ErrInvalidCredentials
	}
	tok, err := s.issueToken(u)
	if err != nil {
		return nil, IssuedToken{}, err
	}
	return u, tok, nil
}

// GetProfile returns the account for the token subject; ErrUserNotFound if
// the account was deleted after the token was issued.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *AuthService) issueToken(u *entity.User) (IssuedToken, error) {
	token, exp, err := s.JWT.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return IssuedToken{}, err
	}
	return IssuedToken{Token: token, ExpiresAt: exp}, nil
}
