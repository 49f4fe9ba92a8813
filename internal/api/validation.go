package api

import (
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// InitValidator adds the objectid rule to gin's validator and makes field
// errors report JSON names.
func InitValidator() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding validator is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		err = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			return service.IsValidID(fl.Field().String())
		})
	})
	return err
}

// bindingFieldErrors turns validator errors into field errors keyed by the
// JSON path, e.g. "sessions[0].exercises[1].sets".
func bindingFieldErrors(err error) ([]service.FieldError, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	fields := make([]service.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		fields = append(fields, service.FieldError{Field: field, Message: validationMessage(fe)})
	}
	return fields, true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "objectid":
		return "must be a 24-character hex object id"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
