package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"kasa/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrValidationFailed.WithDetails("email is empty")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
	assert.Equal(t, "Tous les champs sont obligatoires.: email is empty", err.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", ErrValidationFailed, KindValidation},
		{"wrapped auth", errors.Wrap(ErrInvalidCredentials, "login failed"), KindAuth},
		{"collaborator", NewCollaboratorError(CollaboratorObjectStore, stderrors.New("timeout")), KindCollaborator},
		{"encoding", ErrEncoding.WithDetails("bad glyph"), KindEncoding},
		{"plain", stderrors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestCollaboratorError_SurfacesProviderMessage(t *testing.T) {
	cause := stderrors.New("bucket unavailable")
	err := NewCollaboratorError(CollaboratorObjectStore, cause)

	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.Equal(t, "Erreur : bucket unavailable", err.Message())
	assert.True(t, errors.Is(err, cause))
}
