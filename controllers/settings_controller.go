package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-site/models"
)

// GetHotelSettings (GET /api/settings/hotel) returns the hotel's public
// profile.
func GetHotelSettings(hotel models.HotelSetting) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"hotel": hotel})
	}
}
