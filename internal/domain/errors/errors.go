package errors

import (
	"fmt"
	"net/http"

	"kasa/internal/errors"
)

// Kind classifies application errors independently of the transport.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindAuth         Kind = "auth"
	KindCollaborator Kind = "collaborator"
	KindEncoding     Kind = "encoding"
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindInternal     Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error family
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind        { return e.kind }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches copies made by WithDetails against their template.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

var (
	// Validation errors are raised before any collaborator call.
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Tous les champs sont obligatoires.",
		"",
	)

	ErrCredentialsMissing = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"CREDENTIALS_MISSING",
		"Veuillez saisir vos identifiants.",
		"",
	)

	ErrInvalidPage = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_PAGE",
		"Page inconnue.",
		"",
	)

	// Authentication errors come from the identity provider.
	ErrInvalidCredentials = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Identifiants incorrects.",
		"",
	)

	ErrSignupRejected = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"SIGNUP_REJECTED",
		"Échec de l'inscription. Vérifiez vos informations.",
		"",
	)

	ErrIdentityAlreadyExists = NewBaseError(
		KindAuth,
		http.StatusConflict,
		"IDENTITY_ALREADY_EXISTS",
		"Un compte existe déjà pour cet e-mail.",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Session expirée, veuillez vous reconnecter.",
		"",
	)

	ErrConfirmationInvalid = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"CONFIRMATION_INVALID",
		"Lien de confirmation invalide ou expiré.",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Veuillez vous connecter.",
		"",
	)

	// Document errors.
	ErrEncoding = NewBaseError(
		KindEncoding,
		http.StatusUnprocessableEntity,
		"DOCUMENT_ENCODING_FAILED",
		"Le document n'a pas pu être généré.",
		"",
	)

	// Lookup errors.
	ErrPropertyNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PROPERTY_NOT_FOUND",
		"Bien introuvable.",
		"",
	)

	ErrContractNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"CONTRACT_NOT_FOUND",
		"Contrat introuvable.",
		"",
	)

	ErrDocumentNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"DOCUMENT_NOT_FOUND",
		"Document introuvable.",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		http.StatusForbidden,
		"FORBIDDEN",
		"Accès refusé.",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erreur interne.",
		"",
	)
)

// Collaborator names used in CollaboratorError messages.
const (
	CollaboratorIdentity    = "identity provider"
	CollaboratorRecordStore = "record store"
	CollaboratorObjectStore = "object store"
)

// CollaboratorError reports a failed call to the record store, object store or
// identity provider, surfacing the provider message.
type CollaboratorError struct {
	collaborator string
	err          error
}

// NewCollaboratorError wraps a collaborator failure.
func NewCollaboratorError(collaborator string, err error) AppError {
	return &CollaboratorError{
		collaborator: collaborator,
		err:          err,
	}
}

func (e *CollaboratorError) Error() string {
	return errors.Wrap(e.err, e.collaborator+" call failed").Error()
}

func (e *CollaboratorError) Unwrap() error { return e.err }

func (e *CollaboratorError) Kind() Kind { return KindCollaborator }

func (e *CollaboratorError) HTTPCode() int { return http.StatusBadGateway }

func (e *CollaboratorError) ErrorCode() string { return "COLLABORATOR_FAILED" }

func (e *CollaboratorError) Message() string {
	return fmt.Sprintf("Erreur : %v", e.err)
}

func (e *CollaboratorError) Details() string { return e.collaborator }

// KindOf returns the Kind of the first AppError in err's tree, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
