package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/amap-gateway/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// В сообщениях используем имя из json-тега: "key property must be set"
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// ValidateAs - валидация структуры с приведением ошибки к типу base
// (например errors.ErrInvalidParameter или errors.ErrConfiguration)
func ValidateAs(s interface{}, base *errors.AppError) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return base.Wrap(err.Error(), err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	fields := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
		fields[fe.Field()] = fe.Tag()
	}

	appErr := base.Wrap(strings.Join(msgs, "; "), err)
	appErr.Details["fields"] = fields
	return appErr
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s property must be set", fe.Field())
	case "oneof":
		return fmt.Sprintf("Invalid %s value(%s): %v", fe.Field(), strings.ReplaceAll(fe.Param(), " ", "/"), fe.Value())
	default:
		return fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
}
