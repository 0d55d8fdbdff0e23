package models

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MinReleaseYear is the earliest accepted release year.
const MinReleaseYear = 1970

// ErrValidation is matched by every ValidationErrors value.
var ErrValidation = errors.New("validation failed")

// Now is the clock used for the release-year upper bound.
var Now = time.Now

// MaxReleaseYear is the latest accepted release year: two years ahead.
func MaxReleaseYear() int { return Now().Year() + 2 }

// FieldError describes one rejected field by its wire name.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string { return f.Field + ": " + f.Message }

// ValidationErrors collects the field errors of a rejected input.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = f.String()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool { return target == ErrValidation }

// Field returns the message for the named field, if rejected.
func (v ValidationErrors) Field(name string) (string, bool) {
	for _, f := range v {
		if f.Field == name {
			return f.Message, true
		}
	}
	return "", false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		return Platform(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return Difficulty(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
	_ = v.RegisterValidation("releaseyear", func(fl validator.FieldLevel) bool {
		y := int(fl.Field().Int())
		return y >= MinReleaseYear && y <= MaxReleaseYear()
	})
	return v
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must not be negative"
	case "finite":
		return "must be a finite number"
	case "url":
		return "must be a valid URL"
	case "category":
		return "must be one of " + joinLabels(Categories)
	case "platform":
		return "must be one of " + joinLabels(Platforms)
	case "difficulty":
		return "must be one of " + joinLabels(Difficulties)
	case "releaseyear":
		return fmt.Sprintf("must be between %d and %d", MinReleaseYear, MaxReleaseYear())
	default:
		return "is invalid"
	}
}

func joinLabels[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
