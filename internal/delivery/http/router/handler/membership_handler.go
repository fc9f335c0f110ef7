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

// MembershipHandler holds dependencies for device-group association handlers.
type MembershipHandler struct {
	uc     usecase.MembershipUsecase
	logger *slog.Logger
}

// NewMembershipHandler is the constructor for MembershipHandler, injected by Fx.
func NewMembershipHandler(uc usecase.MembershipUsecase, logger *slog.Logger) *MembershipHandler {
	return &MembershipHandler{
		uc:     uc,
		logger: logger,
	}
}

type membershipRequest struct {
	GroupName string `json:"collections_name"`
	DeviceID  string `json:"device_id"`
}

// parse validates the shared request shape of both membership operations.
func (req *membershipRequest) parse() (uuid.UUID, error) {
	if req.GroupName == "" {
		return uuid.Nil, domainerrors.MissingParameters("Group name is missing")
	}
	if req.DeviceID == "" {
		return uuid.Nil, domainerrors.MissingParameters("Device_id is missing")
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return uuid.Nil, domainerrors.WrongParameters("Wrong device_id")
	}

	return deviceID, nil
}

// AddDeviceToGroup handles the membership creation request.
func (h *MembershipHandler) AddDeviceToGroup(c echo.Context) error {
	var req membershipRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.MissingParameters("Group name is missing")
	}

	deviceID, err := req.parse()
	if err != nil {
		return err
	}

	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	if err := h.uc.Add(c.Request().Context(), principal.UserID, req.GroupName, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Success the device has been added to group", nil)
}

// RemoveDeviceFromGroup handles the membership removal request.
func (h *MembershipHandler) RemoveDeviceFromGroup(c echo.Context) error {
	var req membershipRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.MissingParameters("Group name is missing")
	}

	deviceID, err := req.parse()
	if err != nil {
		return err
	}

	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	if err := h.uc.Remove(c.Request().Context(), principal.UserID, req.GroupName, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Device deleted from group", nil)
}
