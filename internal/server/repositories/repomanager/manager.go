// Package repomanager provides the factory the services use to obtain
// repositories bound to a database handle or to an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/commboard/commboard/internal/dbx"
	"github.com/commboard/commboard/internal/server/repositories/refreshtokens"
	"github.com/commboard/commboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
