package repomanager

import (
	"context"
	"database/sql"

	"github.com/DarshanchGIT/wordverse/internal/dbx"
	"github.com/DarshanchGIT/wordverse/internal/server/repositories/posts"
	"github.com/DarshanchGIT/wordverse/internal/server/repositories/users"
	"github.com/DarshanchGIT/wordverse/internal/server/repositories/votes"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// repository code runs against *sql.DB or an open transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
	Votes(db dbx.DBTX) votes.Repository
}
