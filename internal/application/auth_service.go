package application

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	repo "github.com/vkosyk/course-catalog-api/internal/domain/repository"
	"github.com/vkosyk/course-catalog-api/pkg/apperrors"
	"github.com/vkosyk/course-catalog-api/pkg/helpers"
)

// AuthService is the authorization gate: it authenticates credentials
// and issues the signed session tokens the middleware verifies.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Login validates email/password and issues a session token. Every
// failure path returns the same apperrors.ErrInvalidCredentials so the
// response never reveals whether the email exists.
func (s *AuthService) Login(email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && s.Logger != nil {
			s.Logger.WithError(err).Error("user lookup failed during login")
		}
		return nil, "", time.Time{}, apperrors.ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, "", time.Time{}, apperrors.ErrInvalidCredentials
	}
	token, exp, err := s.JWT.GenerateSessionToken(u)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// Identity returns the current user record for a verified subject id.
// The record is loaded fresh so /api/me reflects committed state, not
// token claims.
func (s *AuthService) Identity(userID int64) (*entity.User, error) {
	return s.Users.GetByID(userID)
}
