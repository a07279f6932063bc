package validation

import (
	"fmt"
	"strings"
)

// FieldError is a local, always recoverable rejection of a single form field.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewFieldError(field Field, message string) *FieldError {
	return &FieldError{
		Field:   field,
		Message: message,
	}
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Error())
	}

	return strings.Join(msgs, "; ")
}

// Has reports whether any error in the set is for field.
func (fe FieldErrors) Has(field Field) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}

	return false
}
