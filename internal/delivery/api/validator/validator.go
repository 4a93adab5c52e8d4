// Package validator adapts go-playground/validator to echo and to the
// registry's field → message error shape.
package validator

import (
	"reflect"
	"strings"

	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/validation"
	"agenda/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequired      = "Campo obrigatório"
	msgInvalidPrefix = "Prefixo inválido"
)

// RequiredMessages lets a request name the message shown for each missing field.
type RequiredMessages interface {
	RequiredMessages() map[string]string
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator with the registry tags:
// notblank, cpf_prefix and cnpj_prefix.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON (or query) name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("cpf_prefix", prefixValidator(11))
	_ = v.RegisterValidation("cnpj_prefix", prefixValidator(14))

	return &CustomValidator{validate: v}
}

// prefixValidator accepts a formatted tax id prefix of at most maxDigits digits.
func prefixValidator(maxDigits int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if strings.Trim(raw, "0123456789.-/ ") != "" {
			return false
		}

		return len(validation.Digits(raw)) <= maxDigits
	}
}

// Validate runs the struct tags and returns a *domainerrors.ValidationError on failure.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.WithStack(err)
	}

	var messages map[string]string
	if rm, ok := i.(RequiredMessages); ok {
		messages = rm.RequiredMessages()
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = messageFor(fe, messages)
	}

	return domainerrors.NewValidationError(fields)
}

func messageFor(fe validator.FieldError, messages map[string]string) string {
	switch fe.Tag() {
	case "required", "notblank":
		if msg, ok := messages[fe.Field()]; ok {
			return msg
		}

		return msgRequired
	case "cpf_prefix", "cnpj_prefix":
		return msgInvalidPrefix
	default:
		return fe.Field() + " inválido"
	}
}
