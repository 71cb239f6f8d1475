package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrValidation          = errors.New("validation")            // 400
	ErrInvalidStatus       = errors.New("invalid status")        // 400
	ErrUserNotFound        = errors.New("user not found")        // 404
	ErrProductNotFound     = errors.New("product not found")     // 404
	ErrStatusNotFound      = errors.New("status not found")      // 404
	ErrTransactionNotFound = errors.New("transaction not found") // 404
	ErrConflict            = errors.New("conflict")              // 409
	ErrInsufficientStock   = errors.New("insufficient stock")    // 409
)

// ValidationError is a rejected request body; Msg is safe to show the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func missingFields(fields ...string) error {
	return &ValidationError{Msg: fmt.Sprintf("Missing required fields (%s)", strings.Join(fields, ", "))}
}

func invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

// translate maps storage errors onto the service taxonomy. notFound is the
// sentinel used when the row is absent.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case isDomain(err):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", notFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isDomain(err error) bool {
	for _, target := range []error{
		ErrValidation, ErrInvalidStatus,
		ErrUserNotFound, ErrProductNotFound, ErrStatusNotFound, ErrTransactionNotFound,
		ErrConflict, ErrInsufficientStock,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
