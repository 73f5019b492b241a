package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and validates session tokens. Tokens are pure bearer
// capabilities: the role inside is trusted until expiry, never re-checked
// against the account store, so a role is stale until re-login.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

var defaultManager *JWTManager

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	m := &JWTManager{Secret: []byte(secret), TTL: ttl}
	defaultManager = m
	return m
}

// DefaultJWT returns the last constructed JWTManager (used for auto-wiring routes)
func DefaultJWT() *JWTManager { return defaultManager }

type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for the user with a fixed expiry.
func (m *JWTManager) GenerateToken(userID, role string) (string, time.Time, error) {
	exp := time.Now().Add(m.TTL)
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseToken validates signature and expiry and returns the claims.
func (m *JWTManager) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
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
	return claims, nil
}
