package tickets

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"ticketly/internal/concerts"
	"ticketly/internal/shared/utils/response"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// PurchaseTicket handles POST /api/v1/tickets/purchase
func (c *Controller) PurchaseTicket(ctx *gin.Context) {
	account, ok := callerAccount(ctx)
	if !ok {
		return
	}

	var req PurchaseTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	ticket, err := c.service.BuyTicket(ctx.Request.Context(), account, req)
	if err != nil {
		status, message := purchaseErrorStatus(err)
		response.RespondJSON(ctx, "error", status, message, nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Ticket purchased successfully", ticket, nil)
}

// GetMyTickets handles GET /api/v1/tickets
func (c *Controller) GetMyTickets(ctx *gin.Context) {
	account, ok := callerAccount(ctx)
	if !ok {
		return
	}

	tickets, err := c.service.GetMyTickets(ctx.Request.Context(), account)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tickets retrieved successfully", tickets, nil)
}

// GetTicket handles GET /api/v1/tickets/:ticketId
func (c *Controller) GetTicket(ctx *gin.Context) {
	ticketID := ctx.Param("ticketId")

	ticket, err := c.service.GetTicket(ctx.Request.Context(), ticketID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTicketNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket retrieved successfully", ticket, nil)
}

// callerAccount extracts the authenticated account id set by the JWT
// middleware. Responds and returns ok=false when the identity is missing or
// malformed.
func callerAccount(ctx *gin.Context) (uuid.UUID, bool) {
	accountID, exists := ctx.Get("account_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Account not authenticated", nil, nil)
		return uuid.Nil, false
	}

	accountIDStr, ok := accountID.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Invalid account ID format", nil, nil)
		return uuid.Nil, false
	}

	account, err := uuid.Parse(accountIDStr)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid account ID", nil, nil)
		return uuid.Nil, false
	}

	return account, true
}

// purchaseErrorStatus maps purchase failures to HTTP statuses. Every failure
// is terminal; the caller decides whether to resubmit.
func purchaseErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, concerts.ErrConcertDoesntExist):
		return http.StatusNotFound, "Concert doesn't exist"
	case errors.Is(err, concerts.ErrTicketsSoldOut):
		return http.StatusConflict, "Tickets sold out"
	case errors.Is(err, concerts.ErrConcertFinished):
		return http.StatusConflict, "Concert finished"
	case errors.Is(err, concerts.ErrIncorrectPaymentValue):
		return http.StatusUnprocessableEntity, "Incorrect payment value"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
