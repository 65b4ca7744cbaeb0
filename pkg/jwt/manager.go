package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken token is malformed or signed with the wrong key
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken token is past its expiry
	ErrExpiredToken = errors.New("expired token")
)

// Claims is the JWT payload issued for admin users
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Level  int    `json:"level"`
}

// Manager signs and verifies HMAC JWTs
type Manager struct {
	secretKey []byte
	expiry    time.Duration
}

// NewManager creates a JWT manager
func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{secretKey: []byte(secret), expiry: expiry}
}

// GenerateToken issues a signed token for a user
func (m *Manager) GenerateToken(userID uint64, name, email string, level int) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
		UserID: userID,
		Name:   name,
		Email:  email,
		Level:  level,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// VerifyToken validates a token and returns its claims
func (m *Manager) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
