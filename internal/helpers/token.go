package helpers

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gatherly/server/internal/models"
)

var (
	// ErrMissingToken means no usable credential was present in the
	// Authorization header.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken covers tampered signatures, wrong algorithms and
	// expired tokens alike; callers treat all three as unauthenticated.
	ErrInvalidToken = errors.New("invalid or expired token")
)

type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the service's identity tokens.
// Tokens are stateless HS256 JWTs with a bounded lifetime; there is no
// server-side revocation list.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewTokenManager(secret string, ttl time.Duration, issuer string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

// Issue signs a token carrying the user's id and admin flag.
func (m *TokenManager) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a raw token, returning its claims.
func (m *TokenManager) Verify(raw string) (*Claims, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ActorFromClaims turns verified claims into an authenticated Actor.
func ActorFromClaims(claims *Claims) (Actor, error) {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Actor{}, ErrInvalidToken
	}
	return Actor{
		UserID:        userID,
		Username:      claims.Username,
		Admin:         claims.IsAdmin,
		Authenticated: true,
	}, nil
}

// TokenFromHeader extracts the raw token from a "Bearer <token>"
// Authorization header. An empty header is the caller's signal for the
// anonymous actor and is checked before calling this.
func TokenFromHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMissingToken
	}
	return parts[1], nil
}
