// Package auth mints and verifies the signed tokens of the session
// lifecycle. Both token kinds are HS256 JWTs sharing one secret; the access
// token carries profile claims for the API layer, the refresh token carries
// the user id only, so a leaked refresh token exposes no profile data.
package auth

import (
	"time"

	"github.com/commboard/commboard/internal/common"
	"github.com/commboard/commboard/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the claims of a short-lived access token.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// RefreshClaims are the claims of a refresh token. Deliberately minimal.
type RefreshClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
}

// GenerateAccessToken signs an access token for the given user.
func GenerateAccessToken(user *models.User, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})

	return token.SignedString(secretKey)
}

// GenerateRefreshToken signs a refresh token carrying only the user id.
// The jti makes every issued token distinct even within one second, which
// the store relies on: the token column is globally unique.
func GenerateRefreshToken(userID int64, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID: userID,
	})

	return token.SignedString(secretKey)
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func ParseAccessToken(tokenString string, secretKey []byte) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := parse(tokenString, claims, secretKey); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken verifies signature and expiry and returns the claims.
// Login also uses it to read the expiry of a token it just minted, so the
// stored expiry always equals the token's own exp claim.
func ParseRefreshToken(tokenString string, secretKey []byte) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := parse(tokenString, claims, secretKey); err != nil {
		return nil, err
	}
	return claims, nil
}

func parse(tokenString string, claims jwt.Claims, secretKey []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return err
	}
	if !token.Valid {
		return common.ErrInvalidToken
	}
	return nil
}
