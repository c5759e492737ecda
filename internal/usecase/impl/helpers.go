// Package impl contains the application-specific business rules implementations.
package impl

import (
	"strings"

	"kasa/internal/domain/entity"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/errors"

	"github.com/google/uuid"
)

const pdfContentType = "application/pdf"

// asCollaboratorError keeps application errors as they are and reports anything
// else as a failure of the named collaborator.
func asCollaboratorError(collaborator string, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewCollaboratorError(collaborator, err)
}

// objectPath places a document under its owner's prefix: {owner_id}/{filename}.
func objectPath(ownerID uuid.UUID, filename string) string {
	return ownerID.String() + "/" + filename
}

// displayName is "Prénom Nom", or the e-mail when no profile names are known.
func displayName(identity *entity.Identity) string {
	name := strings.TrimSpace(identity.GivenName + " " + identity.FamilyName)
	if name == "" {
		return identity.Email
	}

	return name
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}

	return false
}
