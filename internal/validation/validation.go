package validation

import (
	"fmt"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrInvalidUUID = fmt.Errorf("invalid UUID format")
	ErrEmptyTicker = fmt.Errorf("ticker cannot be empty")
)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}
