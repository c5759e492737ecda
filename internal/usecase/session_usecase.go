// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"kasa/internal/domain/entity"
)

// SessionUsecase routes a visitor session between the Home, Signup, Login and App pages.
// Every operation takes the current session value and returns the updated one; on error
// the caller keeps the session it passed in.
type SessionUsecase interface {
	// Resolve applies the App guard and returns the page to render.
	Resolve(ctx context.Context, session entity.Session) *SessionResult
	Navigate(ctx context.Context, session entity.Session, target entity.Page) (*SessionResult, error)
	CreateAccount(ctx context.Context, session entity.Session, input *CreateAccountInput) (*SessionResult, error)
	// ConfirmAccount activates an identity whose signup was held for e-mail confirmation.
	ConfirmAccount(ctx context.Context, session entity.Session, input *ConfirmAccountInput) (*SessionResult, error)
	Authenticate(ctx context.Context, session entity.Session, input *AuthenticateInput) (*SessionResult, error)
	// SignOut never fails: provider errors are logged and the session is cleared anyway.
	SignOut(ctx context.Context, session entity.Session) *SessionResult
}

// SessionResult is the session to keep and the page to render.
type SessionResult struct {
	Session entity.Session
	Page    entity.Page
	Status  string // User-facing confirmation, empty when there is nothing to report.
}

// --- Input DTOs ---

// CreateAccountInput defines the signup form.
type CreateAccountInput struct {
	GivenName  string `json:"prenom"`
	FamilyName string `json:"nom"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// ConfirmAccountInput carries the token from the confirmation e-mail.
type ConfirmAccountInput struct {
	Token string `json:"token"`
}

// AuthenticateInput defines the login form.
type AuthenticateInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
