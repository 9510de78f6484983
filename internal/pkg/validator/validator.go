package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/house-price-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В ошибках отдаём имя поля как в JSON, а не имя Go-поля
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate - валидация структуры. Ошибки валидации превращаются в VALIDATION_FAILED
// с именем первого невалидного поля.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.ErrInvalidRequest.Wrap(err)
	}

	fe := fieldErrs[0]
	return errors.ErrValidation.
		WithMessage(describe(fe)).
		WithDetails(map[string]interface{}{
			"field": fe.Field(),
			"rule":  fe.Tag(),
		})
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("field %s must be greater than %s", fe.Field(), fe.Param())
	case "min", "gte":
		return fmt.Sprintf("field %s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("field %s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("field %s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field %s failed rule %s", fe.Field(), fe.Tag())
	}
}
