package controllers

import (
	"stayrooted/dto"
	"stayrooted/middleware"
	"stayrooted/response"
	"stayrooted/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	catalog  *services.CatalogService
	bookings *services.BookingService
}

func NewProfileController(catalog *services.CatalogService, bookings *services.BookingService) *ProfileController {
	return &ProfileController{catalog: catalog, bookings: bookings}
}

// Profile trả về user, booking của user và experience đang host (nếu là host)
func (ctl *ProfileController) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Unauthorized(c)
		return
	}
	ctx := c.Request.Context()

	bookings, err := ctl.bookings.ListBookings(ctx, user.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	profile := dto.ProfileResponse{User: *user, Bookings: *bookings}
	if user.IsHost() {
		hosted, err := ctl.catalog.ExperiencesByHost(ctx, user.ID)
		if err != nil {
			response.FromError(c, err)
			return
		}
		profile.HostedExperiences = hosted
	}
	response.Success(c, profile)
}
