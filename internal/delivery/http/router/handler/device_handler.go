package handler

import (
	"log/slog"

	deliverycontext "corral/internal/delivery/context"
	"corral/internal/delivery/http/response"
	"corral/internal/domain/entity"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device-related handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// deviceView is the wire shape of a device in listings, with its group
// memberships nested under "collections".
type deviceView struct {
	ID          uuid.UUID         `json:"id_devices"`
	Name        string            `json:"devices_name"`
	IsDeleted   bool              `json:"is_deleted"`
	Collections []entity.GroupRef `json:"collections"`
}

// GetDevices lists the user's devices with nested group memberships.
func (h *DeviceHandler) GetDevices(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	devices, err := h.uc.List(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]deviceView, 0, len(devices))
	for _, device := range devices {
		views = append(views, deviceView{
			ID:          device.ID,
			Name:        device.Name,
			IsDeleted:   device.IsDeleted,
			Collections: device.Groups,
		})
	}

	return response.Success(c, "Success", response.Body{"devices": views})
}

type registerDeviceRequest struct {
	Name string `json:"devices_name"`
}

// RegisterDevice handles the device registration request.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return domainerrors.MissingParameters("Device name is missing")
	}

	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	deviceID, err := h.uc.Register(c.Request().Context(), principal.UserID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Success the device has been registered", response.Body{"deviceId": deviceID})
}

type deleteDeviceRequest struct {
	DeviceID string `json:"device_id"`
	KeepData string `json:"keep_data"`
}

// DeleteDevice handles the device deletion request. keep_data decides
// between a hard delete and a soft delete; it must be exactly the string
// "true" or "false".
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	var req deleteDeviceRequest
	if err := c.Bind(&req); err != nil || req.DeviceID == "" {
		return domainerrors.MissingParameters("Device_id is missing")
	}
	if req.KeepData == "" {
		return domainerrors.MissingParameters("Keep_data is missing")
	}
	if req.KeepData != "true" && req.KeepData != "false" {
		return domainerrors.WrongParameters("Keep_data is wrong")
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return domainerrors.WrongParameters("Wrong device_id")
	}

	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	keepData := req.KeepData == "true"
	if err := h.uc.Delete(c.Request().Context(), principal.UserID, deviceID, keepData); err != nil {
		return errors.WithStack(err)
	}

	message := "Device deleted, Data deleted"
	if keepData {
		message = "Device deleted, Data kept"
	}

	return response.Success(c, message, nil)
}
