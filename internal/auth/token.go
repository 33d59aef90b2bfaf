package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cdms/internal/model"
)

// TokenTTL is the fixed lifetime of an issued bearer token.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned when a token fails signature, shape, or expiry
// validation.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload carried by a bearer token.
// Only non-secret identity fields are included, never credential data.
type Claims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies signed bearer tokens.
// It is constructed once with the signing secret and injected wherever tokens
// are needed; there is no package-level secret state.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager signing with the given secret.
// The secret must be non-empty; enforcing that at startup is the caller's job
// (config validation fails hard when it is missing).
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Issue signs a token for the given user, valid for TokenTTL.
func (tm *TokenManager) Issue(user *model.User) (string, error) {
	now := tm.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Verify parses a token string and returns its claims if the signature and
// expiry check out.
func (tm *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
