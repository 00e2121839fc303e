package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/amap-gateway/internal/domain/repository"
	"github.com/amap-gateway/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewJournalRepositoryForTest creates a journal repository with test database and logger
func NewJournalRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.JournalRepository {
	return postgres.NewJournalRepository(NewDBForTest(db, logger), logger)
}
