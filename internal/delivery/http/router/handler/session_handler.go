package handler

import (
	"log/slog"

	deliverycontext "corral/internal/delivery/context"
	"corral/internal/delivery/http/response"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for login and token lifecycle handlers.
type SessionHandler struct {
	accountUC usecase.AccountUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(accountUC usecase.AccountUsecase, sessionUC usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		accountUC: accountUC,
		sessionUC: sessionUC,
		logger:    logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	DeviceID string `json:"device_id"`
}

// Login handles the login request. An optional device_id binds the issued
// token to that device.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return domainerrors.MissingParameters("Email or Password is missing")
	}

	input := &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	if req.DeviceID != "" {
		deviceID, err := uuid.Parse(req.DeviceID)
		if err != nil {
			return domainerrors.WrongParameters("Wrong device_id")
		}
		input.DeviceID = &deviceID
	}

	output, err := h.accountUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Success", response.Body{"token": output.Token})
}

type renewRequest struct {
	Token string `json:"token"`
}

// Renew handles the token renewal request. No bearer auth here: the old
// token itself, possibly expired, is the credential.
func (h *SessionHandler) Renew(c echo.Context) error {
	var req renewRequest
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return domainerrors.MissingParameters("Old token is missing")
	}

	output, err := h.sessionUC.Renew(c.Request().Context(), req.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Success", response.Body{"token": output.Token})
}

// Logout revokes the token the request was authorized with.
func (h *SessionHandler) Logout(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	if err := h.sessionUC.Logout(c.Request().Context(), principal.RawToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Success the token have been deleted", nil)
}

// LogoutAll revokes every token issued to the authenticated user.
func (h *SessionHandler) LogoutAll(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	if err := h.sessionUC.LogoutAll(c.Request().Context(), principal.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Success all the token have been deleted", nil)
}
