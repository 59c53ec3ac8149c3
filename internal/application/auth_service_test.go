package application

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	"github.com/vkosyk/course-catalog-api/internal/infrastructure/filestore"
	"github.com/vkosyk/course-catalog-api/pkg/apperrors"
	"github.com/vkosyk/course-catalog-api/pkg/helpers"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newAuthService(t *testing.T) (*AuthService, *filestore.UserRepository) {
	t.Helper()
	repo := filestore.NewUserRepository(t.TempDir())
	hash, err := helpers.HashPassword("correct-password")
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.User{
		Name:         "Олена",
		Email:        "olena@example.com",
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}))
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(repo, jwt, quietLogger()), repo
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	svc, _ := newAuthService(t)

	u, token, exp, err := svc.Login("olena@example.com", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, "Олена", u.Name)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.JWT.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "Олена", claims.Name)
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, _, wrongPassword := svc.Login("olena@example.com", "wrong")
	_, _, _, unknownEmail := svc.Login("nobody@example.com", "whatever")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	// Same error value: nothing reveals whether the email exists.
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestExpiredTokenIsRejected(t *testing.T) {
	svc, repo := newAuthService(t)

	u, err := repo.GetByEmail("olena@example.com")
	require.NoError(t, err)

	expired := &helpers.JWTManager{Secret: svc.JWT.Secret, SessionTTL: -time.Minute}
	token, _, err := expired.GenerateSessionToken(u)
	require.NoError(t, err)

	_, err = svc.JWT.ParseSessionToken(token)
	assert.Error(t, err)
}

func TestForgedTokenIsRejected(t *testing.T) {
	svc, repo := newAuthService(t)

	u, err := repo.GetByEmail("olena@example.com")
	require.NoError(t, err)

	forged := &helpers.JWTManager{Secret: []byte("other-secret"), SessionTTL: time.Hour}
	token, _, err := forged.GenerateSessionToken(u)
	require.NoError(t, err)

	_, err = svc.JWT.ParseSessionToken(token)
	assert.Error(t, err)
}

func TestIdentityMissingUser(t *testing.T) {
	svc, _ := newAuthService(t)
	_, err := svc.Identity(404404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
