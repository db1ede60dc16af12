package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/VersaceXcodes/eco5/internal/handlers"
	"github.com/VersaceXcodes/eco5/internal/middleware"
	"github.com/VersaceXcodes/eco5/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const spaDir = "./public"

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/alerts", middleware.AuthMiddleware(), handlers.AlertStream)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		users := api.Group("/users", middleware.AuthMiddleware())
		{
			users.GET("/search", handlers.SearchUsers)
			users.GET("/:id", handlers.GetUser)
			users.PUT("/:id", handlers.UpdateUser)
			users.DELETE("/:id", handlers.DeleteUser)
		}

		dashboard := api.Group("/dashboard", middleware.AuthMiddleware())
		{
			dashboard.GET("/:user_id", handlers.GetDashboard)
			dashboard.PATCH("/:user_id", handlers.UpdateDashboard)
		}

		calculator := api.Group("/impact-calculator", middleware.AuthMiddleware())
		{
			calculator.GET("/:user_id", handlers.GetImpactCalculator)
			calculator.PATCH("/:user_id", handlers.UpdateImpactCalculator)
		}

		forum := api.Group("/community-forum", middleware.AuthMiddleware())
		{
			forum.GET("", handlers.ListForumThreads)
			forum.POST("", handlers.CreateForumThread)
			forum.GET("/:id", handlers.GetForumThread)
			forum.PATCH("/:id", handlers.UpdateForumThread)
		}

		events := api.Group("/events", middleware.AuthMiddleware())
		{
			events.GET("", handlers.ListEvents)
			events.POST("", handlers.CreateEvent)
			events.GET("/:id", handlers.GetEvent)
			events.PATCH("/:id", handlers.UpdateEvent)
			events.DELETE("/:id", handlers.DeleteEvent)
		}

		resources := api.Group("/resource-library", middleware.AuthMiddleware())
		{
			resources.GET("", handlers.ListResources)
			resources.POST("", handlers.CreateResource)
			resources.GET("/:id", handlers.GetResource)
			resources.PATCH("/:id", handlers.UpdateResource)
		}

		alerts := api.Group("/alerts", middleware.AuthMiddleware())
		{
			alerts.GET("/:user_id", handlers.ListAlerts)
			alerts.POST("", handlers.CreateAlert)
			alerts.PATCH("/:id", handlers.UpdateAlert)
		}
	}

	// SPA fallback: non-API GETs serve the built frontend.
	r.NoRoute(func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet || strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		requested := filepath.Join(spaDir, filepath.Clean(ctx.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			ctx.File(requested)
			return
		}

		ctx.File(filepath.Join(spaDir, "index.html"))
	})

	return r
}
