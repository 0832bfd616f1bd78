package tickets

import (
	"ticketly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupTicketRoutes configures all ticket-related routes
func SetupTicketRoutes(rg *gin.RouterGroup, controller *Controller) {
	tickets := rg.Group("/tickets")
	tickets.Use(middleware.JWTAuth(), middleware.RequireRoles("BUYER", "OPERATOR"))
	{
		tickets.POST("/purchase", controller.PurchaseTicket) // POST /api/v1/tickets/purchase
		tickets.GET("", controller.GetMyTickets)             // GET /api/v1/tickets
		tickets.GET("/:ticketId", controller.GetTicket)      // GET /api/v1/tickets/:ticketId
	}
}
