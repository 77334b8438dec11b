package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by an access token. Role is one of the identity roles
// (customer, admin, hotel_manager, manager).
type TokenClaims struct {
	Email string
	Role  string
}

var errInvalidToken = errors.New("invalid token")

// NewAccessToken signs an HS256 JWT for the given identity. Tokens carry
// email, role, exp and iat claims.
func NewAccessToken(secret, email, role string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"email": email,
		"role":  role,
		"exp":   now.Add(ttl).Unix(),
		"iat":   now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken validates a signed token and extracts its claims. Tokens
// signed with anything but HMAC are rejected.
func ParseAccessToken(secret, raw string) (TokenClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return TokenClaims{}, errInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errInvalidToken
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if email == "" {
		return TokenClaims{}, errInvalidToken
	}
	return TokenClaims{Email: email, Role: role}, nil
}
