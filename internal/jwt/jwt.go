// Package jwt mints and validates the bearer credentials carried in the
// Authorization header. Validation is pure given (credential, clock, key):
// it touches no storage and produces a fresh Identity per request.
package jwt

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pawtime-dev/pawtime/internal/domain"
	internal_errors "github.com/pawtime-dev/pawtime/internal/errors"
	"github.com/pawtime-dev/pawtime/internal/logger"
)

type Service interface {
	NewToken(user domain.User) (string, error)
	Authenticate(credential string) (domain.Identity, error)
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Jwt struct {
	secretKey []byte
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey: []byte(secretKey), ttl: ttl}
}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.Id, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", internal_errors.New(internal_errors.Internal, "Can't create token")
	}
	return tokenString, nil
}

// Authenticate decodes and verifies a credential into an Identity.
// Absent, malformed, expired and badly signed credentials all resolve to
// Unauthenticated; the caller decides whether the path tolerates anonymity.
func (j *Jwt) Authenticate(credential string) (domain.Identity, error) {
	if credential == "" {
		return domain.Identity{}, internal_errors.New(internal_errors.Unauthenticated, "Missing credential")
	}

	token, err := jwt.ParseWithClaims(credential, &Claims{}, func(t *jwt.Token) (any, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Identity{}, internal_errors.New(internal_errors.Unauthenticated, "Invalid or expired credential")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Identity{}, internal_errors.New(internal_errors.Unauthenticated, "Invalid access token")
	}

	userId, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.Identity{}, internal_errors.New(internal_errors.Unauthenticated, "Invalid subject claim")
	}

	role, known := domain.ParseRole(claims.Role)
	if !known {
		// Unknown role values never grant privileges, but the fallback
		// should be visible in logs rather than silent.
		logger.Log.Warn("unrecognized role claim, defaulting to USER", "role", claims.Role, "user_id", userId)
	}

	return domain.Identity{UserId: userId, Role: role}, nil
}
