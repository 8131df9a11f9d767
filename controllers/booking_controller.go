package controllers

import (
	"stayrooted/constants"
	"stayrooted/dto"
	"stayrooted/middleware"
	"stayrooted/response"
	"stayrooted/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

func (ctl *BookingController) QuoteExperience(c *gin.Context) {
	var input dto.ExperienceBookingInput
	if err := bindOptionalJSON(c, &input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quote, err := ctl.bookings.QuoteExperience(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, quote)
}

// BookExperience godoc
// @Summary      Đặt experience
// @Tags         booking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "Experience ID"
// @Param        body  body  dto.ExperienceBookingInput  true  "Ngày và số người"
// @Success      201  {object}  response.Response
// @Router       /experience/{id}/book [post]
func (ctl *BookingController) BookExperience(c *gin.Context) {
	var input dto.ExperienceBookingInput
	if err := bindOptionalJSON(c, &input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	booking, err := ctl.bookings.BookExperience(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, constants.MsgExperienceBooked, booking)
}

func (ctl *BookingController) QuoteStay(c *gin.Context) {
	var input dto.StayBookingInput
	if err := bindOptionalJSON(c, &input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quote, err := ctl.bookings.QuoteStay(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, quote)
}

// BookStay godoc
// @Summary      Đặt homestay
// @Tags         booking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "Stay ID"
// @Param        body  body  dto.StayBookingInput  true  "Ngày nhận/trả phòng và số khách"
// @Success      201  {object}  response.Response
// @Router       /stay/{id}/book [post]
func (ctl *BookingController) BookStay(c *gin.Context) {
	var input dto.StayBookingInput
	if err := bindOptionalJSON(c, &input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := ctl.bookings.BookStay(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, services.StayBookedMessage(result.Nights, result.Booking.TotalAmount), result)
}

func (ctl *BookingController) ListBookings(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Unauthorized(c)
		return
	}

	bookings, err := ctl.bookings.ListBookings(c.Request.Context(), user.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bookings)
}

func (ctl *BookingController) ChangeStatus(c *gin.Context) {
	var input dto.BookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "action must be one of: confirm, cancel, complete")
		return
	}

	result, err := ctl.bookings.ChangeStatus(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), input.Action)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Booking "+result.Status, result)
}
