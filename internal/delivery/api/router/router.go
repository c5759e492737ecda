// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kasa/internal/delivery/api/middleware"
	"kasa/internal/delivery/api/router/handler"
	"kasa/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	PropertyHandler   *handler.PropertyHandler
	PaymentHandler    *handler.PaymentHandler
	ContractHandler   *handler.ContractHandler
	DashboardHandler  *handler.DashboardHandler
	DocumentHandler   *handler.DocumentHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	propertyHandler   *handler.PropertyHandler
	paymentHandler    *handler.PaymentHandler
	contractHandler   *handler.ContractHandler
	dashboardHandler  *handler.DashboardHandler
	documentHandler   *handler.DocumentHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		propertyHandler:   params.PropertyHandler,
		paymentHandler:    params.PaymentHandler,
		contractHandler:   params.ContractHandler,
		dashboardHandler:  params.DashboardHandler,
		documentHandler:   params.DocumentHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Receipt verification codes are scanned without a session
	e.GET(usecase.ReceiptVerificationPrefix+"*", r.documentHandler.VerifyReceipt)

	// Page router
	sessionGroup := e.Group("/session", r.sessionMiddleware.Load)
	{
		sessionGroup.GET("", r.sessionHandler.Current)
		sessionGroup.POST("/navigate", r.sessionHandler.Navigate)
	}

	authGroup := e.Group("/auth", r.sessionMiddleware.Load)
	{
		authGroup.POST("/signup", r.sessionHandler.Signup)
		authGroup.GET("/confirm", r.sessionHandler.Confirm)
		authGroup.POST("/confirm", r.sessionHandler.Confirm)
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout)
	}

	// App page operations
	apiV1 := e.Group("/api/v1", r.sessionMiddleware.Load, r.sessionMiddleware.RequireApp)

	propertiesGroup := apiV1.Group("/properties")
	{
		propertiesGroup.POST("", r.propertyHandler.CreateProperty)
		propertiesGroup.GET("", r.propertyHandler.ListProperties)
		propertiesGroup.DELETE("/:id", r.propertyHandler.DeleteProperty)
	}

	paymentsGroup := apiV1.Group("/payments")
	{
		paymentsGroup.POST("", r.paymentHandler.RecordPayment)
		paymentsGroup.GET("", r.paymentHandler.ListPayments)
		paymentsGroup.POST("/preview", r.paymentHandler.PreviewReceipt)
	}

	contractsGroup := apiV1.Group("/contracts")
	{
		contractsGroup.POST("", r.contractHandler.CreateContract)
		contractsGroup.GET("", r.contractHandler.ListContracts)
	}

	apiV1.GET("/tenants", r.contractHandler.ListTenants)
	apiV1.GET("/dashboard", r.dashboardHandler.Dashboard)
	apiV1.GET("/documents/*", r.documentHandler.Download)
}
