package entity

import (
	"fmt"

	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"
)

// newValidationError оборачивает ErrValidation с пояснением,
// чтобы вызывающий мог проверить errors.Is(err, apperrors.ErrValidation)
func newValidationError(msg string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
}
