package api

import (
	"log"
	stdhttp "net/http"
	"strings"
	"time"

	intconfig "tripmate/internal/config"
	h "tripmate/internal/http/handlers"
	"tripmate/internal/http/middleware"
	"tripmate/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env.CorsOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	pages := web.Handlers{FeedBase: env.TripsAPIBase}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(stdhttp.StatusNotFound, gin.H{
				"error":  "route not found",
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			})
			return
		}
		pages.NotFound(c)
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/posts", h.ListPosts)
	}

	r.GET("/", pages.Home)
	r.GET("/search", pages.SearchSubmit)
	r.GET("/posts", pages.Posts)
	r.GET("/trips/new", pages.NewTrip)
	r.GET("/trips/:id", pages.TripDetail)
	r.GET("/signup", pages.Signup)

	return r
}

func corsMiddleware(allowed []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowed,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
