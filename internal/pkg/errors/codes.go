package errors

import "net/http"

const (
	CodeConfiguration    = "CONFIGURATION_ERROR"
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeRequestFailed    = "REQUEST_FAILED"
	CodeDecode           = "DECODE_ERROR"
)

var (
	ErrConfiguration = New(
		CodeConfiguration,
		"Invalid client configuration",
		http.StatusInternalServerError,
	)

	ErrInvalidParameter = New(
		CodeInvalidParameter,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrRequestFailed = New(
		CodeRequestFailed,
		"Upstream request failed",
		http.StatusBadGateway,
	)

	ErrDecode = New(
		CodeDecode,
		"Failed to decode upstream response",
		http.StatusBadGateway,
	)

	ErrOperationNotFound = New(
		"OPERATION_NOT_FOUND",
		"Unknown AMap operation",
		http.StatusNotFound,
	)

	ErrJournalDisabled = New(
		"JOURNAL_DISABLED",
		"Call journal is disabled",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
