package repository

import (
	"context"
	"time"

	"github.com/amap-gateway/internal/domain"
)

// JournalRepository - журнал вызовов AMap
type JournalRepository interface {
	// Record сохраняет запись о вызове
	Record(ctx context.Context, call *domain.UpstreamCall) error

	// Recent возвращает последние записи
	Recent(ctx context.Context, limit int) ([]domain.UpstreamCall, error)

	// UsageSince возвращает статистику по операциям начиная с since
	UsageSince(ctx context.Context, since time.Time) ([]domain.OperationUsage, error)
}
