package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "villa_pricing/internal/adapter/http/dto/request"
	response "villa_pricing/internal/adapter/http/dto/response"
	"villa_pricing/internal/usecase"
	"villa_pricing/pkg"
)

var (
	errInvalidOverridePayload = pkg.NewDomainErrorSimple("INVALID_OVERRIDE_INPUT", "Invalid override payload", http.StatusBadRequest)
	errOverrideNotFound       = pkg.NewDomainErrorSimple("OVERRIDE_NOT_FOUND", "No price override for this room", http.StatusNotFound)
)

// OverrideHandler is the admin console's manual price control.
type OverrideHandler struct {
	usecase usecase.IOverrideUseCase
}

func NewOverrideHandler(uc usecase.IOverrideUseCase) *OverrideHandler {
	return &OverrideHandler{usecase: uc}
}

// GetOverride godoc
// @Summary      Current price override of a room
// @Tags         overrides
// @Produce      json
// @Param        room_id  path  string  true  "Room id"
// @Success      200  {object}  response.OverrideResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /rooms/{room_id}/override [get]
func (h *OverrideHandler) GetOverride(c *gin.Context) {
	o, ok, err := h.usecase.GetOverride(c.Request.Context(), c.Param("room_id"))
	if err != nil {
		appErr := mapOverrideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !ok {
		c.JSON(errOverrideNotFound.HTTPStatus, errOverrideNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceOverride(o))
}

// SetOverride godoc
// @Summary      Set a manual price for a room
// @Description  The price must stay below the reference rate by at least the minimum discount.
// @Tags         overrides
// @Accept       json
// @Produce      json
// @Param        room_id  path  string                      true  "Room id"
// @Param        body     body  request.SetOverrideRequest  true  "Custom price"
// @Success      200  {object}  response.OverrideResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /rooms/{room_id}/override [put]
func (h *OverrideHandler) SetOverride(c *gin.Context) {
	var payload request.SetOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOverridePayload.HTTPStatus, errInvalidOverridePayload.ToHTTPError())
		return
	}

	o, err := h.usecase.SetOverride(c.Request.Context(), c.Param("room_id"), payload.CustomPrice)
	if err != nil {
		appErr := mapOverrideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceOverride(o))
}

// ClearOverride godoc
// @Summary      Remove a room's manual price
// @Tags         overrides
// @Produce      json
// @Param        room_id  path  string  true  "Room id"
// @Success      200  {object}  response.ClearOverrideResponse
// @Router       /rooms/{room_id}/override [delete]
func (h *OverrideHandler) ClearOverride(c *gin.Context) {
	roomID := c.Param("room_id")
	cleared, err := h.usecase.ClearOverride(c.Request.Context(), roomID)
	if err != nil {
		appErr := mapOverrideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ClearOverrideResponse{RoomID: roomID, Cleared: cleared})
}

func mapOverrideError(err error) *pkg.AppError {
	var oob *usecase.OutOfBoundsError
	switch {
	case errors.As(err, &oob):
		return pkg.NewDomainError("OVERRIDE_OUT_OF_BOUNDS", "Custom price is above the allowed maximum", err, http.StatusUnprocessableEntity).
			WithDetail("max_allowed_price", oob.MaxAllowed)
	case errors.Is(err, usecase.ErrInvalidReferenceRate):
		return pkg.NewDomainError("INVALID_REFERENCE_RATE", "Room has no valid reference rate", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidRoomID), errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoomNotFound):
		return pkg.NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
