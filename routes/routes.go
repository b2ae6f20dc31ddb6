package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-site/config"
	"hotel-site/controllers"
	"hotel-site/middleware"
	"hotel-site/models"
	"hotel-site/services"
	"hotel-site/utils"
	"hotel-site/views"
)

// Deps are the controllers and shared state the router wires together.
type Deps struct {
	Config   *config.Config
	Logger   *utils.Logger
	Sessions *services.SessionStore
	Hotel    models.HotelSetting

	Pages   *controllers.PageController
	Booking *controllers.BookingController
	Contact *controllers.ContactController
}

// SetupRouter builds the site's gin engine.
func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(d.Logger))
	r.StaticFS("/static", http.FS(views.StaticFS()))

	origins := d.Config.CORSOrigins
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", d.Pages.Home)
	r.GET("/rooms", d.Pages.Rooms)
	r.GET("/dining", d.Pages.Dining)
	r.GET("/amenities", d.Pages.Amenities)
	r.GET("/events", d.Pages.Events)
	r.GET("/gallery", d.Pages.GalleryPage)

	session := middleware.VisitorSession(d.Sessions, d.Config.SessionCookie, d.Config.SessionTTL)

	booking := r.Group("/booking", session)
	{
		booking.GET("", d.Booking.ShowBooking)
		booking.POST("", d.Booking.SubmitBooking)
	}

	contact := r.Group("/contact", session)
	{
		contact.GET("", d.Contact.ShowContact)
		contact.POST("", d.Contact.SubmitContact)
	}

	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))
	{
		api.GET("/rooms", d.Pages.GetRooms)
		api.GET("/gallery", d.Pages.GetGallery)
		api.GET("/quote", d.Booking.Quote)
		api.GET("/booking", session, d.Booking.GetBookingState)
		api.GET("/settings/hotel", controllers.GetHotelSettings(d.Hotel))
	}

	r.NoRoute(d.Pages.NotFound)

	return r
}
