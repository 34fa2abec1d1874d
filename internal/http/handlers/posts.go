package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"tripmate/internal/http/middleware"
	"tripmate/internal/services"

	"github.com/gin-gonic/gin"
)

// ListPosts serves the public trips feed: GET /api/posts?limit=6.
// The limit is clamped, never rejected, so sloppy clients still get data.
func ListPosts(c *gin.Context) {
	limit := services.DefaultPostLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	svc := services.TripsService{RequestID: middleware.GetRequestID(c)}
	posts, err := svc.ListPosts(limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
