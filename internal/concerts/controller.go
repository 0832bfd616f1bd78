package concerts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"ticketly/internal/shared/utils/response"
)

type Controller interface {
	CreateConcert(c *gin.Context)
	GetConcert(c *gin.Context)
	ListConcerts(c *gin.Context)
}

type controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) Controller {
	return &controller{
		service:   service,
		validator: validator.New(),
	}
}

func (ctrl *controller) CreateConcert(c *gin.Context) {
	var req CreateConcertRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	// Operator identity set by auth middleware
	operatorID, exists := c.Get("account_id")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Operator not authenticated", nil, nil)
		return
	}

	concert, err := ctrl.service.AddConcert(c.Request.Context(), operatorID.(string), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Concert created successfully", concert, nil)
}

func (ctrl *controller) GetConcert(c *gin.Context) {
	concertID, err := parseConcertID(c.Param("concertId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid concert ID", nil, err.Error())
		return
	}

	concert, err := ctrl.service.GetConcertByID(c.Request.Context(), concertID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrConcertDoesntExist) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Concert retrieved successfully", concert, nil)
}

func (ctrl *controller) ListConcerts(c *gin.Context) {
	concerts, err := ctrl.service.ListConcerts(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Concerts retrieved successfully", concerts, nil)
}

func parseConcertID(raw string) (uint32, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}
