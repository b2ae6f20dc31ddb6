package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-site/models"
	"hotel-site/services"
	"hotel-site/utils"
	"hotel-site/views"
)

// PageController renders the informational pages.
type PageController struct {
	Catalog *services.CatalogLoader
	Gallery *services.Gallery
	Slides  []models.HeroSlide
	Hotel   models.HotelSetting
}

func NewPageController(catalog *services.CatalogLoader, gallery *services.Gallery, slides []models.HeroSlide, hotel models.HotelSetting) *PageController {
	return &PageController{Catalog: catalog, Gallery: gallery, Slides: slides, Hotel: hotel}
}

func (ctrl *PageController) props(title, active string) views.PageProps {
	return views.PageProps{Title: title, Active: active, Hotel: ctrl.Hotel}
}

// Home (GET /). ?slide=<n> selects the hero slide.
func (ctrl *PageController) Home(c *gin.Context) {
	utils.HTML(c, http.StatusOK, views.HomePage(views.HomeProps{
		PageProps: ctrl.props("Home", "/"),
		Slides:    ctrl.Slides,
		Slide:     queryInt(c, "slide", 0),
		Catalog:   ctrl.Catalog.Load(c.Request.Context()),
	}))
}

// Rooms (GET /rooms).
func (ctrl *PageController) Rooms(c *gin.Context) {
	utils.HTML(c, http.StatusOK, views.RoomsPage(views.RoomsProps{
		PageProps: ctrl.props("Rooms & Suites", "/rooms"),
		Catalog:   ctrl.Catalog.Load(c.Request.Context()),
	}))
}

func (ctrl *PageController) Dining(c *gin.Context) {
	utils.HTML(c, http.StatusOK, views.DiningPage(ctrl.props("Dining", "/dining")))
}

func (ctrl *PageController) Amenities(c *gin.Context) {
	utils.HTML(c, http.StatusOK, views.AmenitiesPage(ctrl.props("Amenities", "/amenities")))
}

func (ctrl *PageController) Events(c *gin.Context) {
	utils.HTML(c, http.StatusOK, views.EventsPage(ctrl.props("Events & Meetings", "/events")))
}

// GalleryPage (GET /gallery?category=&image=).
func (ctrl *PageController) GalleryPage(c *gin.Context) {
	view := ctrl.Gallery.View(c.Query("category"), queryInt(c, "image", -1))
	utils.HTML(c, http.StatusOK, views.GalleryPage(views.GalleryProps{
		PageProps:  ctrl.props("Gallery", "/gallery"),
		Categories: ctrl.Gallery.Categories(),
		View:       view,
	}))
}

// GetRooms (GET /api/rooms) returns the catalog state as JSON.
func (ctrl *PageController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Catalog.Load(c.Request.Context()))
}

// GetGallery (GET /api/gallery?category=&image=).
func (ctrl *PageController) GetGallery(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Gallery.View(c.Query("category"), queryInt(c, "image", -1)))
}

// NotFound renders unknown paths with the site chrome.
func (ctrl *PageController) NotFound(c *gin.Context) {
	utils.HTML(c, http.StatusNotFound, views.NotFoundPage(ctrl.props("Page Not Found", "")))
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
