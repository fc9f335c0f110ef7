// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	deliverycontext "corral/internal/delivery/context"
	"corral/internal/delivery/http/response"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.MissingParameters("Missing parameters")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.MissingParameters("Missing parameters")
	}

	input := &usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}

	if err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "User successfully created", nil)
}

type updateUserRequest struct {
	Password    string  `json:"password"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	NewPassword *string `json:"new_password"`
}

// UpdateUser handles the profile update request. The current password is
// always required; every other field is optional.
func (h *AccountHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil || req.Password == "" {
		return domainerrors.MissingParameters("Missing password")
	}

	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	input := &usecase.UpdateProfileInput{
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		NewPassword: req.NewPassword,
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), principal.UserID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "User updated", nil)
}

type deleteUserRequest struct {
	Password string `json:"password"`
}

// DeleteUser handles the account deletion request.
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	var req deleteUserRequest
	if err := c.Bind(&req); err != nil || req.Password == "" {
		return domainerrors.MissingParameters("Missing password")
	}

	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), principal.UserID, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Success user and his data have been deleted", nil)
}
