// controllers/booking_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-site/middleware"
	"hotel-site/models"
	"hotel-site/services"
	"hotel-site/utils"
	"hotel-site/views"
)

// BookingController drives the booking wizard from form posts.
type BookingController struct {
	Catalog  *services.CatalogLoader
	Bookings services.BookingCreator
	Hotel    models.HotelSetting
}

func NewBookingController(catalog *services.CatalogLoader, bookings services.BookingCreator, hotel models.HotelSetting) *BookingController {
	return &BookingController{Catalog: catalog, Bookings: bookings, Hotel: hotel}
}

// ShowBooking (GET /booking) renders the current step. ?room=<id> picks a
// room, as the "Book This Room" links on the rooms page do.
func (ctrl *BookingController) ShowBooking(c *gin.Context) {
	sess := middleware.Session(c)
	if sess == nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	catalog := ctrl.Catalog.Load(c.Request.Context())
	if raw := c.Query("room"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 0); err == nil {
			sess.Wizard.SelectRoom(uint(id))
		}
	}
	sess.Wizard.EnsureRoom(catalog.Rooms)

	utils.HTML(c, http.StatusOK, views.BookingPage(views.BookingProps{
		PageProps: views.PageProps{Title: "Book Your Stay", Active: "/booking", Hotel: ctrl.Hotel},
		Catalog:   catalog,
		Wizard:    sess.Wizard.State(catalog.Rooms),
	}))
}

// SubmitBooking (POST /booking) applies the posted inputs and the button
// action, then redirects back to GET /booking.
func (ctrl *BookingController) SubmitBooking(c *gin.Context) {
	sess := middleware.Session(c)
	if sess == nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx := c.Request.Context()
	log := utils.GetLogger().WithSession(middleware.SessionToken(c))

	var form models.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		// Malformed numbers bind as zero and are caught by step validation.
		log.DebugContext(ctx, "Booking form binding failed", "error", err.Error())
	}

	w := sess.Wizard
	switch c.PostForm("action") {
	case views.ActionPrevious:
		w.Update(form)
		w.Previous()
	case views.ActionReset:
		w.Reset()
	case views.ActionSelectRoom:
		w.Update(form)
	default:
		w.Update(form)
		catalog := ctrl.Catalog.Load(ctx)
		if err := w.Next(ctx, catalog.Rooms, ctrl.Bookings); err != nil {
			log.WithError(err).InfoContext(ctx, "Booking step rejected", "step", int(w.Step()))
		}
	}

	utils.SeeOther(c, "/booking")
}

// Quote (GET /api/quote) prices a stay without touching the visitor's
// wizard.
func (ctrl *BookingController) Quote(c *gin.Context) {
	form := models.BookingForm{
		CheckIn:  c.Query("check_in"),
		CheckOut: c.Query("check_out"),
	}
	if raw := c.Query("room"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("invalid room id %q", raw))
			return
		}
		form.RoomID = uint(id)
	}

	catalog := ctrl.Catalog.Load(c.Request.Context())
	room, ok := services.FindRoom(catalog.Rooms, form.RoomID)

	data := gin.H{
		"nights": services.Nights(form),
		"total":  services.Total(form, catalog.Rooms),
	}
	if ok {
		data["room"] = room
	}
	utils.JSONSuccess(c, http.StatusOK, data)
}

// GetBookingState (GET /api/booking) returns the visitor's wizard state.
func (ctrl *BookingController) GetBookingState(c *gin.Context) {
	sess := middleware.Session(c)
	if sess == nil {
		utils.JSONError(c, http.StatusInternalServerError, "session unavailable")
		return
	}
	catalog := ctrl.Catalog.Load(c.Request.Context())
	utils.JSONSuccess(c, http.StatusOK, sess.Wizard.State(catalog.Rooms))
}
