package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	switcherrors "github.com/go-drift/switchkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	argbPattern = regexp.MustCompile(`^#?(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)
)

// validatorInstance returns the shared validator with the document rules
// registered. Field names in errors follow the YAML keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// argb accepts #RRGGBB (opaque) and #AARRGGBB.
		_ = v.RegisterValidation("argb", func(fl validator.FieldLevel) bool {
			return argbPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// convertValidationError turns the first validator failure into a
// ConfigError naming the document path.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return switcherrors.NewConfigError("", err.Error(), err)
	}
	fe := ves[0]
	field := documentPath(fe)
	return switcherrors.NewConfigError(field, describe(fe), err)
}

// documentPath drops the root type name from the namespace:
// "Document.style.shadow.opacity" becomes "style.shadow.opacity".
func documentPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be >= %s (got %v)", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("must be <= %s (got %v)", fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("must be > %s (got %v)", fe.Param(), fe.Value())
	case "argb":
		return fmt.Sprintf("must be #RRGGBB or #AARRGGBB (got %q)", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s] (got %q)", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
