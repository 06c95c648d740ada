// Package refreshtokens declares the repository contract for the
// single-row-per-user refresh token table. No business rules live here.
package refreshtokens

import (
	"context"
	"time"

	"github.com/commboard/commboard/internal/server/models"
)

type Repository interface {
	// Upsert inserts the refresh token for userID, replacing any existing
	// row for that user. expiresAt must come from the token's own expiry
	// claim. A token collision surfaces as a wrapped constraint error and
	// is never retried here.
	Upsert(ctx context.Context, userID int64, token string, expiresAt time.Time) error

	// FindByUserID returns the active row for userID or common.ErrorNotFound.
	FindByUserID(ctx context.Context, userID int64) (*models.RefreshToken, error)

	// DeleteByUserID removes the row for userID. Deleting an absent row is
	// not an error.
	DeleteByUserID(ctx context.Context, userID int64) error
}
