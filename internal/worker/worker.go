package worker

import (
	"context"
)

// Worker - фоновый обработчик, которым управляет WorkerManager.
// Start блокируется до Stop или отмены ctx.
type Worker interface {
	Start(ctx context.Context) error

	// Stop должен быть безопасен для повторного вызова
	Stop() error

	// Name используется в логах и в WorkerManager.Errors
	Name() string
}
