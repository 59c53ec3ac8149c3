package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
)

// JWTManager signs and verifies session tokens. Tokens are the only
// session state: nothing is persisted server-side, so a token stays
// valid until natural expiry and cannot be revoked earlier.
type JWTManager struct {
	Secret     []byte
	SessionTTL time.Duration
}

var defaultManager *JWTManager

func NewJWTManager(secret string, sessionTTL time.Duration) *JWTManager {
	m := &JWTManager{Secret: []byte(secret), SessionTTL: sessionTTL}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

// SessionClaims is the signed claim set proving identity: subject id,
// display name, role, issue and expiry times.
type SessionClaims struct {
	UserID int64       `json:"uid"`
	Name   string      `json:"name"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

func (m *JWTManager) GenerateSessionToken(u *entity.User) (string, time.Time, error) {
	exp := time.Now().Add(m.SessionTTL)
	claims := &SessionClaims{
		UserID: u.ID,
		Name:   u.Name,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseSessionToken checks the signature method, signature and expiry.
// Any failure means the caller should clear the client-held token.
func (m *JWTManager) ParseSessionToken(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if !claims.Role.Valid() {
		return nil, errors.New("unknown role in token")
	}
	return claims, nil
}
