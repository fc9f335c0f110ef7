// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"corral/internal/delivery/http/middleware"
	"corral/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	SessionHandler    *handler.SessionHandler
	DeviceHandler     *handler.DeviceHandler
	GroupHandler      *handler.GroupHandler
	MembershipHandler *handler.MembershipHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	sessionHandler    *handler.SessionHandler
	deviceHandler     *handler.DeviceHandler
	groupHandler      *handler.GroupHandler
	membershipHandler *handler.MembershipHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		sessionHandler:    params.SessionHandler,
		deviceHandler:     params.DeviceHandler,
		groupHandler:      params.GroupHandler,
		membershipHandler: params.MembershipHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Open routes: registration, login and renewal carry no bearer token.
	// Renewal authenticates with the old token itself, which may be expired.
	api.POST("/register", r.accountHandler.Register)
	api.POST("/login", r.sessionHandler.Login)
	api.POST("/renew_jwt", r.sessionHandler.Renew)

	// Everything else requires a live bearer token.
	protected := api.Group("", r.authMiddleware.Authenticate)
	{
		protected.GET("/get_devices", r.deviceHandler.GetDevices)
		protected.POST("/register_device", r.deviceHandler.RegisterDevice)
		protected.DELETE("/delete_device", r.deviceHandler.DeleteDevice)

		protected.POST("/create_group", r.groupHandler.CreateGroup)
		protected.DELETE("/delete_group", r.groupHandler.DeleteGroup)
		protected.GET("/list_group", r.groupHandler.ListGroup)

		protected.POST("/add_device_to_group", r.membershipHandler.AddDeviceToGroup)
		protected.DELETE("/remove_device_from_group", r.membershipHandler.RemoveDeviceFromGroup)

		protected.DELETE("/delete_jwt", r.sessionHandler.Logout)
		protected.DELETE("/delete_all_jwt", r.sessionHandler.LogoutAll)

		protected.PUT("/update_user", r.accountHandler.UpdateUser)
		protected.DELETE("/delete_user", r.accountHandler.DeleteUser)
	}
}
