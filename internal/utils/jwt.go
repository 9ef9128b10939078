package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// SetJWTSecret sets the signing key used for all tokens. Must be called once
// at startup before any token is issued or parsed.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// Claims carries the authenticated actor identity inside a token.
// Role distinguishes volunteer users from organizations; the two actor kinds
// live in separate tables and share an id space only inside chat rooms.
type Claims struct {
	ActorID uint   `json:"actor_id"`
	Email   string `json:"email"`
	Role    string `json:"role"` // user, organization
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 token for the given actor.
func GenerateToken(actorID uint, email, role string, expireHours int) (string, error) {
	if expireHours <= 0 {
		expireHours = 24
	}

	claims := Claims{
		ActorID: actorID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "borantia",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
