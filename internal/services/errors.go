package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrRestaurantNotFound is returned when no restaurant has the requested ID
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaNotFound is returned when no pizza has the requested ID
	ErrPizzaNotFound = errors.New("pizza not found")
)

// notFound maps gorm's record-not-found error to the given sentinel
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// isConstraintViolation reports whether err is the storage layer rejecting a row.
// Check constraint failures are only recognizable by the driver message.
func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "constraint")
}

// translateWriteError hides storage details from callers: constraint failures
// become a generic ValidationError, anything else is wrapped with the operation name.
// ValidationErrors raised inside a transaction pass through unchanged.
func translateWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}
	if isConstraintViolation(err) {
		log.WithError(err).WithField("operation", op).Warn("Storage constraint rejected write")
		return models.NewValidationError()
	}
	log.WithError(err).WithField("operation", op).Error("Storage write failed")
	return fmt.Errorf("%s: %w", op, err)
}
