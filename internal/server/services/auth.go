// Package services contains the server-side business logic. This file
// implements AuthService: credential verification, token issuance,
// refresh-token persistence, and refresh validation.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"time"

	"github.com/commboard/commboard/internal/common"
	"github.com/commboard/commboard/internal/logging"
	"github.com/commboard/commboard/internal/server/auth"
	"github.com/commboard/commboard/internal/server/config"
	"github.com/commboard/commboard/internal/server/models"
	"github.com/commboard/commboard/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService owns the session lifecycle:
//   - ValidateUser: verify an email/password pair
//   - Login: mint both tokens and persist the refresh token
//   - Refresh: validate a presented refresh token and mint a new access token
//   - Logout: drop the stored refresh token
//
// It is the only writer of the refresh_tokens table. Concurrent logins for
// one user are last-write-wins on the upsert; the loser's refresh token
// simply stops matching the store.
type AuthService struct {
	db                   *sql.DB
	repos                repomanager.RepositoryManager
	logger               logging.Logger
	jwtSecret            []byte
	accessTokenValidity  time.Duration
	refreshTokenValidity time.Duration
}

// NewAuthService constructs an AuthService from its dependencies. There is
// no ambient container; the caller wires everything explicitly.
func NewAuthService(db *sql.DB, repos repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		db:                   db,
		repos:                repos,
		logger:               logger.With("component", "auth_service"),
		jwtSecret:            []byte(cfg.SecretKey),
		accessTokenValidity:  cfg.AccessTokenValidityDuration,
		refreshTokenValidity: cfg.RefreshTokenValidityDuration,
	}
}

// ValidateUser checks the email/password pair against the stored hash and
// returns the user with the password hash cleared. An unknown email returns
// common.ErrUnknownUser, a mismatching password common.ErrWrongPassword.
// Infrastructure failures are logged and returned, never swallowed.
func (s *AuthService) ValidateUser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownUser
		}
		s.logger.Error(ctx, "user lookup failed", "email", email, "error", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, common.ErrWrongPassword
	}

	return omitPassword(user), nil
}

// Login verifies the credentials, issues an access and a refresh token, and
// upserts the refresh token so the user has exactly one active session row.
// The stored expiry is decoded from the refresh token just issued, so store
// and token cannot disagree on lifetime.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.ValidateUser(ctx, email, password)
	if err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateAccessToken(user, s.jwtSecret, s.accessTokenValidity)
	if err != nil {
		s.logger.Error(ctx, "access token signing failed", "userId", user.ID, "error", err)
		return nil, err
	}

	refreshToken, err := auth.GenerateRefreshToken(user.ID, s.jwtSecret, s.refreshTokenValidity)
	if err != nil {
		s.logger.Error(ctx, "refresh token signing failed", "userId", user.ID, "error", err)
		return nil, err
	}

	claims, err := auth.ParseRefreshToken(refreshToken, s.jwtSecret)
	if err != nil {
		s.logger.Error(ctx, "decoding issued refresh token failed", "userId", user.ID, "error", err)
		return nil, err
	}

	if err := s.repos.RefreshTokens(s.db).Upsert(ctx, user.ID, refreshToken, claims.ExpiresAt.Time); err != nil {
		s.logger.Error(ctx, "refresh token upsert failed", "userId", user.ID, "error", err)
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// presented token must equal the stored row for userID and the row must not
// have expired by wall-clock time; the token's own signed expiry has already
// been verified by the caller, the store check is the second gate. The
// refresh token is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string, userID int64) (string, error) {
	record, err := s.repos.RefreshTokens(s.db).FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "refresh token lookup failed", "userId", userID, "error", err)
		return "", err
	}

	if subtle.ConstantTimeCompare([]byte(refreshToken), []byte(record.Token)) != 1 {
		return "", common.ErrorUnauthorized
	}
	if !time.Now().Before(record.ExpiresAt) {
		return "", common.ErrorUnauthorized
	}

	// the account may have been deleted after the token was issued
	user, err := s.repos.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "userId", userID, "error", err)
		return "", err
	}

	accessToken, err := auth.GenerateAccessToken(omitPassword(user), s.jwtSecret, s.accessTokenValidity)
	if err != nil {
		s.logger.Error(ctx, "access token signing failed", "userId", userID, "error", err)
		return "", err
	}

	return accessToken, nil
}

// Logout deletes the stored refresh token for userID. Idempotent.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.repos.RefreshTokens(s.db).DeleteByUserID(ctx, userID); err != nil {
		s.logger.Error(ctx, "refresh token delete failed", "userId", userID, "error", err)
		return err
	}
	return nil
}

// omitPassword returns a copy of the user with the password hash cleared.
func omitPassword(user *models.User) *models.User {
	result := *user
	result.Password = ""
	return &result
}
