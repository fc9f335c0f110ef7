package handler

import (
	"log/slog"

	deliverycontext "corral/internal/delivery/context"
	"corral/internal/delivery/http/response"
	"corral/internal/domain/entity"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GroupHandler holds dependencies for group-related handlers.
type GroupHandler struct {
	uc     usecase.GroupUsecase
	logger *slog.Logger
}

// NewGroupHandler is the constructor for GroupHandler, injected by Fx.
func NewGroupHandler(uc usecase.GroupUsecase, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{
		uc:     uc,
		logger: logger,
	}
}

type groupRequest struct {
	Name string `json:"collections_name"`
}

// CreateGroup handles the group creation request.
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	var req groupRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return domainerrors.MissingParameters("Group name is missing")
	}

	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	groupID, err := h.uc.Create(c.Request().Context(), principal.UserID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Success the group has been created", response.Body{"groupId": groupID})
}

// DeleteGroup handles the group deletion request.
func (h *GroupHandler) DeleteGroup(c echo.Context) error {
	var req groupRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return domainerrors.MissingParameters("Group name is missing")
	}

	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	if err := h.uc.Delete(c.Request().Context(), principal.UserID, req.Name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Group deleted", nil)
}

// ListGroup lists all groups owned by the user.
func (h *GroupHandler) ListGroup(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.Unauthorized("Unauthorized")
	}

	groups, err := h.uc.List(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]entity.GroupRef, 0, len(groups))
	for _, group := range groups {
		views = append(views, entity.GroupRef{ID: group.ID, Name: group.Name})
	}

	return response.Success(c, "Success", response.Body{"collections": views})
}
