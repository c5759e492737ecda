package entity

import "github.com/google/uuid"

// Page names the view a session currently renders.
type Page string

const (
	PageHome   Page = "home"
	PageSignup Page = "signup"
	PageLogin  Page = "login"
	PageApp    Page = "app"
)

// Valid reports whether p is one of the known pages.
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageSignup, PageLogin, PageApp:
		return true
	default:
		return false
	}
}

// Session is the per-visitor state. It is a plain value: handlers receive it,
// return an updated copy, and never share it across visitors.
type Session struct {
	Identity    *Identity
	Page        Page
	AccessToken string // Identity provider session token, invalidated on sign-out.
}

// NewSession returns the initial session, on the home page with no identity.
func NewSession() Session {
	return Session{Page: PageHome}
}

// Authenticated reports whether the session holds a non-empty identity.
func (s Session) Authenticated() bool {
	return s.Identity != nil && s.Identity.ID != uuid.Nil
}

// OwnerID returns the identity id, or uuid.Nil for anonymous sessions.
func (s Session) OwnerID() uuid.UUID {
	if s.Identity == nil {
		return uuid.Nil
	}

	return s.Identity.ID
}
