package routes

import (
	"github.com/gin-gonic/gin"

	"villa_pricing/internal/adapter/http/handlers"
)

const (
	PathRooms         = "/rooms"
	PathPrices        = "/prices"
	PathWeekdayPolicy = "/weekday-policy"
)

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler, overrideHandler *handlers.OverrideHandler) {
	rooms := rg.Group(PathRooms)
	{
		// Booking widget and Deals page.
		rooms.GET("", pricingHandler.ListRooms)
		rooms.GET("/:room_id/price", pricingHandler.GetPrice)
		rooms.GET("/:room_id/rate-comparison", pricingHandler.GetRateComparison)

		// Admin console.
		rooms.GET("/:room_id/override", overrideHandler.GetOverride)
		rooms.PUT("/:room_id/override", overrideHandler.SetOverride)
		rooms.DELETE("/:room_id/override", overrideHandler.ClearOverride)
	}

	rg.GET(PathPrices, pricingHandler.ListPrices)
	rg.GET(PathWeekdayPolicy, pricingHandler.GetWeekdayPolicy)
}
