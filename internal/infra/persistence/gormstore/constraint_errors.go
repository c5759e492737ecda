package gormstore

import (
	"strings"

	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation recognizes duplicate keys from either driver,
// including connections that were opened without error translation.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// storeError reports a record store failure as a collaborator error.
func storeError(err error, message string) error {
	return domainerrors.NewCollaboratorError(domainerrors.CollaboratorRecordStore, errors.Wrap(err, message))
}
