// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"kasa/internal/delivery/api/response"
	deliverycontext "kasa/internal/delivery/context"
	"kasa/internal/domain/entity"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/errors"
	"kasa/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the page router: current page, navigation, signup, confirmation, login and logout.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// NavigateRequest represents the request body for a page change.
type NavigateRequest struct {
	Page string `json:"page" validate:"required"`
}

// SignupRequest represents the account creation form. Every field is mandatory.
type SignupRequest struct {
	GivenName  string `json:"prenom" validate:"required"`
	FamilyName string `json:"nom" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
}

// ConfirmRequest carries the token of the confirmation e-mail, as JSON or as a query parameter.
type ConfirmRequest struct {
	Token string `json:"token" query:"token" validate:"required"`
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionView is the page to render, with the signed-in identity if any.
type SessionView struct {
	Page     entity.Page      `json:"page"`
	Status   string           `json:"status,omitempty"`
	Identity *entity.Identity `json:"identity,omitempty"`
}

// Current returns the page of the already resolved session.
func (h *SessionHandler) Current(c echo.Context) error {
	session := deliverycontext.GetSession(c)

	return h.respond(c, http.StatusOK, &usecase.SessionResult{Session: session, Page: session.Page})
}

// Navigate handles a request to switch page.
func (h *SessionHandler) Navigate(c echo.Context) error {
	var req NavigateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.sessionUC.Navigate(c.Request().Context(), deliverycontext.GetSession(c), entity.Page(req.Page))
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respond(c, http.StatusOK, result)
}

// Signup handles the account creation form.
func (h *SessionHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.sessionUC.CreateAccount(c.Request().Context(), deliverycontext.GetSession(c), &usecase.CreateAccountInput{
		GivenName:  req.GivenName,
		FamilyName: req.FamilyName,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respond(c, http.StatusCreated, result)
}

// Confirm activates an account held for e-mail confirmation.
func (h *SessionHandler) Confirm(c echo.Context) error {
	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.sessionUC.ConfirmAccount(c.Request().Context(), deliverycontext.GetSession(c), &usecase.ConfirmAccountInput{Token: req.Token})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respond(c, http.StatusOK, result)
}

// Login handles the login form.
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Requête invalide.")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(domainerrors.ErrCredentialsMissing.WithDetails(err.Error()))
	}

	result, err := h.sessionUC.Authenticate(c.Request().Context(), deliverycontext.GetSession(c), &usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respond(c, http.StatusOK, result)
}

// Logout clears the session. It always succeeds.
func (h *SessionHandler) Logout(c echo.Context) error {
	result := h.sessionUC.SignOut(c.Request().Context(), deliverycontext.GetSession(c))

	return h.respond(c, http.StatusOK, result)
}

// respond keeps the new session for the response hook and renders the page.
func (h *SessionHandler) respond(c echo.Context, status int, result *usecase.SessionResult) error {
	deliverycontext.SetSession(c, result.Session)

	return response.Success(c, status, SessionView{
		Page:     result.Page,
		Status:   result.Status,
		Identity: result.Session.Identity,
	})
}
