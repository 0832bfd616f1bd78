package concerts

import (
	"ticketly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupConcertRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse the catalog
	publicConcerts := router.Group("/concerts")
	{
		publicConcerts.GET("", controller.ListConcerts)            // GET /api/v1/concerts
		publicConcerts.GET("/:concertId", controller.GetConcert)   // GET /api/v1/concerts/:concertId
	}

	// Operator routes - only operators can publish concerts
	adminConcerts := router.Group("/admin/concerts")
	adminConcerts.Use(middleware.JWTAuth(), middleware.RequireOperator())
	{
		adminConcerts.POST("", controller.CreateConcert) // POST /api/v1/admin/concerts
	}
}
