package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamwell/backend/internal/application/usecase/support"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
	"github.com/dreamwell/backend/internal/integration/entrypoint/dto"
)

// SupportController handles the user side of support tickets.
type SupportController struct {
	createUseCase *support.CreateTicketUseCase
	listUseCase   *support.ListTicketsUseCase
}

// NewSupportController creates a new support controller instance.
func NewSupportController(
	createUseCase *support.CreateTicketUseCase,
	listUseCase *support.ListTicketsUseCase,
) *SupportController {
	return &SupportController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /support/tickets requests.
func (c *SupportController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	ticket, err := c.createUseCase.Execute(ctx.Request.Context(), userID, req.Subject, req.Message)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

// List handles GET /support/tickets requests.
func (c *SupportController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	tickets, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTicketListResponse(tickets))
}

// Get handles GET /support/tickets/:id requests.
func (c *SupportController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	ticketID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	ticket, err := c.listUseCase.Get(ctx.Request.Context(), userID, ticketID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}
