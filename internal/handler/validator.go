package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate = &Validator{validate: validator.New()}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lowercase field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// queryInt reads an optional integer query parameter
func queryInt(r *http.Request, key string) (int, bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	return v, true, err
}

// respondValidationError writes a 400 with per-field messages
func respondValidationError(w http.ResponseWriter, err error) {
	respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  ErrMsgInvalidRequestSummary,
		Fields: FormatValidationError(err),
	})
}
