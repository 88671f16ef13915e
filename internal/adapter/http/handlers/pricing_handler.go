package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	request "villa_pricing/internal/adapter/http/dto/request"
	response "villa_pricing/internal/adapter/http/dto/response"
	"villa_pricing/internal/usecase"
	"villa_pricing/pkg"
)

var (
	errInvalidCheckIn = pkg.NewDomainErrorSimple("INVALID_CHECK_IN", "check_in must be a YYYY-MM-DD date", http.StatusBadRequest)
)

// RevertClock reports when overrides are next reverted to automatic pricing.
type RevertClock interface {
	NextRevert(now time.Time) time.Time
}

// PricingHandler serves the read side: catalog, quotes and policy.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
	clock   RevertClock
	now     func() time.Time
}

// NewPricingHandler accepts a nil clock when the scheduler is disabled.
func NewPricingHandler(uc usecase.IPricingUseCase, clock RevertClock) *PricingHandler {
	return &PricingHandler{usecase: uc, clock: clock, now: time.Now}
}

// ListRooms godoc
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {array}   response.RoomResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /rooms [get]
func (h *PricingHandler) ListRooms(c *gin.Context) {
	rooms, err := h.usecase.ListRooms(c.Request.Context())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRooms(rooms))
}

// GetPrice godoc
// @Summary      Effective direct-booking price of a room
// @Tags         prices
// @Produce      json
// @Param        room_id   path   string  true  "Room id"
// @Param        check_in  query  string  true  "Check-in date (YYYY-MM-DD)"
// @Success      200  {object}  response.PriceQuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /rooms/{room_id}/price [get]
func (h *PricingHandler) GetPrice(c *gin.Context) {
	var q request.PriceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidCheckIn.HTTPStatus, errInvalidCheckIn.ToHTTPError())
		return
	}
	checkIn, err := q.ParseCheckIn(h.now().Location())
	if err != nil {
		c.JSON(errInvalidCheckIn.HTTPStatus, errInvalidCheckIn.ToHTTPError())
		return
	}

	quote, err := h.usecase.GetEffectivePrice(c.Request.Context(), c.Param("room_id"), checkIn)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceQuote(quote))
}

// ListPrices godoc
// @Summary      Effective prices of every room for a check-in date
// @Tags         prices
// @Produce      json
// @Param        check_in  query  string  true  "Check-in date (YYYY-MM-DD)"
// @Success      200  {array}   response.PriceQuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /prices [get]
func (h *PricingHandler) ListPrices(c *gin.Context) {
	var q request.PriceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidCheckIn.HTTPStatus, errInvalidCheckIn.ToHTTPError())
		return
	}
	checkIn, err := q.ParseCheckIn(h.now().Location())
	if err != nil {
		c.JSON(errInvalidCheckIn.HTTPStatus, errInvalidCheckIn.ToHTTPError())
		return
	}

	quotes, err := h.usecase.ListEffectivePrices(c.Request.Context(), checkIn)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceQuotes(quotes))
}

// GetWeekdayPolicy godoc
// @Summary      Auto/manual weekday partition and next revert time
// @Tags         policy
// @Produce      json
// @Success      200  {object}  response.WeekdayPolicyResponse
// @Router       /weekday-policy [get]
func (h *PricingHandler) GetWeekdayPolicy(c *gin.Context) {
	var next time.Time
	if h.clock != nil {
		next = h.clock.NextRevert(h.now())
	}
	c.JSON(http.StatusOK, response.FromWeekdayPolicy(h.usecase.GetWeekdayPolicy(), next))
}

// GetRateComparison godoc
// @Summary      Direct rate compared with the marketplace reference rate
// @Tags         prices
// @Produce      json
// @Param        room_id  path  string  true  "Room id"
// @Success      200  {object}  response.RateComparisonResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /rooms/{room_id}/rate-comparison [get]
func (h *PricingHandler) GetRateComparison(c *gin.Context) {
	rc, err := h.usecase.RateComparison(c.Request.Context(), c.Param("room_id"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRateComparison(rc))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRoomID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Check-in date is in the past", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoomNotFound):
		return pkg.NewDomainErrorSimple("ROOM_NOT_FOUND", "Room not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REFERENCE_RATE", "Room has no valid reference rate", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
