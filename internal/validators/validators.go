package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Semantic versioning regex (basic)
var semverRegex = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// structValidator reports field names using their json tag
var structValidator = newStructValidator()

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct checks the `validate` tags of s.
// Every failing field becomes a *ValidationError; several failures are joined.
func ValidateStruct(s any) error {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, NewValidationError(fe.Field(), describeFieldError(fe)))
	}
	return errors.Join(errs...)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s (got: %v)", fe.Param(), fe.Value())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s (got: %v)", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q check (got: %v)", fe.Tag(), fe.Value())
	}
}

// IsValidSemanticVersion checks if the string follows semantic versioning
// Format: MAJOR.MINOR.PATCH or MAJOR.MINOR.PATCH-prerelease+build
// Examples: 1.0.0, 2.1.3-beta, 1.0.0-alpha+001
func IsValidSemanticVersion(version string) bool {
	if version == "" {
		return false
	}
	return semverRegex.MatchString(version)
}
