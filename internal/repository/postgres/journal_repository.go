package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/amap-gateway/internal/domain"
	"github.com/amap-gateway/internal/domain/repository"
)

const maxJournalLimit = 500

type journalRepository struct {
	db     *DB
	logger *zap.Logger
}

// journalRow - строка amap_call_journal
type journalRow struct {
	ID         uuid.UUID      `db:"id"`
	Operation  string         `db:"operation"`
	Format     string         `db:"format"`
	Params     pq.StringArray `db:"params"`
	Signed     bool           `db:"signed"`
	Status     string         `db:"status"`
	InfoCode   string         `db:"infocode"`
	ErrorCode  string         `db:"error_code"`
	DurationMS int64          `db:"duration_ms"`
	CreatedAt  time.Time      `db:"created_at"`
}

// NewJournalRepository создает новый экземпляр journal repository
func NewJournalRepository(db *DB, logger *zap.Logger) repository.JournalRepository {
	return &journalRepository{
		db:     db,
		logger: logger,
	}
}

// Record сохраняет запись о вызове AMap
func (r *journalRepository) Record(ctx context.Context, call *domain.UpstreamCall) error {
	if call.ID == uuid.Nil {
		call.ID = uuid.New()
	}
	if call.CreatedAt.IsZero() {
		call.CreatedAt = time.Now().UTC()
	}
	// pq.Array(nil) дает NULL, а колонка NOT NULL
	if call.Params == nil {
		call.Params = []string{}
	}

	query := `
		INSERT INTO amap_call_journal
			(id, operation, format, params, signed, status, infocode, error_code, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		call.ID,
		call.Operation,
		call.Format,
		pq.Array(call.Params),
		call.Signed,
		call.Status,
		call.InfoCode,
		call.ErrorCode,
		call.DurationMS,
		call.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to record upstream call",
			zap.String("operation", call.Operation),
			zap.Error(err))
		return fmt.Errorf("record upstream call: %w", err)
	}

	return nil
}

// Recent возвращает последние записи журнала
func (r *journalRepository) Recent(ctx context.Context, limit int) ([]domain.UpstreamCall, error) {
	if limit <= 0 || limit > maxJournalLimit {
		limit = maxJournalLimit
	}

	query := `
		SELECT id, operation, format, params, signed, status, infocode, error_code, duration_ms, created_at
		FROM amap_call_journal
		ORDER BY created_at DESC
		LIMIT $1
	`

	var rows []journalRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		r.logger.Error("failed to select journal", zap.Error(err))
		return nil, fmt.Errorf("select journal: %w", err)
	}

	calls := make([]domain.UpstreamCall, 0, len(rows))
	for _, row := range rows {
		calls = append(calls, domain.UpstreamCall{
			ID:         row.ID,
			Operation:  row.Operation,
			Format:     row.Format,
			Params:     []string(row.Params),
			Signed:     row.Signed,
			Status:     row.Status,
			InfoCode:   row.InfoCode,
			ErrorCode:  row.ErrorCode,
			DurationMS: row.DurationMS,
			CreatedAt:  row.CreatedAt,
		})
	}

	return calls, nil
}

// UsageSince возвращает количество вызовов по операциям начиная с since
func (r *journalRepository) UsageSince(ctx context.Context, since time.Time) ([]domain.OperationUsage, error) {
	query := `
		SELECT
			operation,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status <> $2) AS failed
		FROM amap_call_journal
		WHERE created_at >= $1
		GROUP BY operation
		ORDER BY total DESC, operation
	`

	var usage []domain.OperationUsage
	if err := r.db.SelectContext(ctx, &usage, query, since, domain.CallStatusOK); err != nil {
		r.logger.Error("failed to aggregate journal", zap.Error(err))
		return nil, fmt.Errorf("aggregate journal: %w", err)
	}

	return usage, nil
}
