package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stayease-backend/controllers"
	"stayease-backend/metrics"
	"stayease-backend/middleware"
	"stayease-backend/session"
)

// Handlers bundles the controllers the router dispatches to.
type Handlers struct {
	Auth       *controllers.AuthController
	Properties *controllers.PropertyController
	Reviews    *controllers.ReviewController
	Bookings   *controllers.BookingController
	Host       *controllers.HostController
	Waitlist   *controllers.WaitlistController
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(h Handlers, sessions *session.Manager, corsOrigins string, log *logrus.Logger) *gin.Engine {
	controllers.RegisterValidators()
	metrics.Register()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log), middleware.Metrics())

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.Use(middleware.Session(sessions, log))
	auth := middleware.RequireSession()
	{
		api.POST("/register", h.Auth.Register)
		api.POST("/login", h.Auth.Login)
		api.POST("/logout", auth, h.Auth.Logout)

		user := api.Group("/user", auth)
		{
			user.GET("", h.Auth.Me)
			user.PUT("", h.Auth.UpdateMe)
			user.DELETE("", h.Auth.DeleteMe)
		}

		properties := api.Group("/properties")
		{
			properties.GET("", h.Properties.List)
			properties.POST("", auth, h.Properties.Create)
			properties.GET("/:id", h.Properties.Get)
			properties.PUT("/:id", auth, h.Properties.Update)
			properties.DELETE("/:id", auth, h.Properties.Delete)
			properties.GET("/:id/quote", h.Properties.Quote)
			properties.POST("/:id/photos", auth, h.Properties.AddPhoto)
			properties.DELETE("/:id/photos/:photoId", auth, h.Properties.RemovePhoto)
			properties.GET("/:id/reviews", h.Reviews.ListForProperty)
			properties.POST("/:id/reviews", auth, h.Reviews.Create)
			properties.GET("/:id/bookings", auth, h.Bookings.ListForProperty)
		}

		// older clients still call the listing endpoints by this name
		forRent := api.Group("/ForRent")
		{
			forRent.GET("", h.Properties.List)
			forRent.POST("", auth, h.Properties.Create)
			forRent.GET("/:id", h.Properties.Get)
			forRent.PUT("/:id", auth, h.Properties.Update)
			forRent.DELETE("/:id", auth, h.Properties.Delete)
		}

		reviews := api.Group("/reviews", auth)
		{
			reviews.PUT("/:id", h.Reviews.Update)
			reviews.DELETE("/:id", h.Reviews.Delete)
		}

		bookings := api.Group("/bookings", auth)
		{
			bookings.GET("", h.Bookings.List)
			bookings.POST("", h.Bookings.Create)
			bookings.GET("/:id", h.Bookings.Get)
			bookings.PUT("/:id", h.Bookings.Update)
			bookings.PATCH("/:id/status", h.Bookings.UpdateStatus)
			bookings.DELETE("/:id", h.Bookings.Delete)
		}

		host := api.Group("/host", auth)
		{
			host.GET("/properties", h.Host.Properties)
			host.GET("/bookings/export", h.Host.ExportBookings)
		}

		api.POST("/waitlist", h.Waitlist.Join)
	}

	return r
}
