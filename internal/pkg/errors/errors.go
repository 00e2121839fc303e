package errors

import (
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Err        error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает исходную ошибку
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по коду, чтобы errors.Is работал с сентинелами из codes.go
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails возвращает копию ошибки с деталями. Сентинелы не изменяются.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// Wrap возвращает копию ошибки с другим сообщением и причиной
func (e *AppError) Wrap(message string, err error) *AppError {
	cp := *e
	cp.Message = message
	cp.Err = err
	cp.Details = make(map[string]interface{})
	return &cp
}

// Newf создает ошибку того же типа с форматированным сообщением
func (e *AppError) Newf(format string, args ...interface{}) *AppError {
	return e.Wrap(fmt.Sprintf(format, args...), nil)
}

// InvalidParameter - ошибка валидации входных параметров
func InvalidParameter(format string, args ...interface{}) *AppError {
	return ErrInvalidParameter.Newf(format, args...)
}

// Configuration - ошибка конфигурации клиента
func Configuration(format string, args ...interface{}) *AppError {
	return ErrConfiguration.Newf(format, args...)
}

// RequestFailed - ошибка транспорта или не-2xx ответ апстрима
func RequestFailed(message string, status int, err error) *AppError {
	appErr := ErrRequestFailed.Wrap(message, err)
	if status > 0 {
		appErr.Details["status"] = status
	}
	return appErr
}

// Decode - тело ответа не удалось разобрать
func Decode(message string, err error) *AppError {
	return ErrDecode.Wrap(message, err)
}
