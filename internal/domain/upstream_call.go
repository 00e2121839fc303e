package domain

import (
	"time"

	"github.com/google/uuid"
)

// UpstreamCall - запись журнала вызовов AMap
type UpstreamCall struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Operation  string    `json:"operation" db:"operation"`
	Format     string    `json:"format" db:"format"`
	Params     []string  `json:"params" db:"params"`
	Signed     bool      `json:"signed" db:"signed"`
	Status     string    `json:"status" db:"status"`
	InfoCode   string    `json:"infocode,omitempty" db:"infocode"`
	ErrorCode  string    `json:"error_code,omitempty" db:"error_code"`
	DurationMS int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Статусы записи журнала
const (
	CallStatusOK       = "ok"
	CallStatusRejected = "rejected" // AMap вернул status=0
	CallStatusFailed   = "failed"
)

// OperationUsage - агрегированная статистика вызовов по операции
type OperationUsage struct {
	Operation string `json:"operation" db:"operation"`
	Total     int64  `json:"total" db:"total"`
	Failed    int64  `json:"failed" db:"failed"`
}
