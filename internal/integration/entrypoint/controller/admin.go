package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamwell/backend/internal/application/usecase/admin"
	"github.com/dreamwell/backend/internal/application/usecase/analytics"
	"github.com/dreamwell/backend/internal/application/usecase/support"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
	"github.com/dreamwell/backend/internal/integration/entrypoint/dto"
)

// AdminController handles the role-gated administration console.
type AdminController struct {
	manageUsersUseCase     *admin.ManageUsersUseCase
	flaggedDreamsUseCase   *admin.FlaggedDreamsUseCase
	systemSettingsUseCase  *admin.SystemSettingsUseCase
	systemAnalyticsUseCase *analytics.SystemAnalyticsUseCase
	manageTicketsUseCase   *support.ManageTicketsUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	manageUsersUseCase *admin.ManageUsersUseCase,
	flaggedDreamsUseCase *admin.FlaggedDreamsUseCase,
	systemSettingsUseCase *admin.SystemSettingsUseCase,
	systemAnalyticsUseCase *analytics.SystemAnalyticsUseCase,
	manageTicketsUseCase *support.ManageTicketsUseCase,
) *AdminController {
	return &AdminController{
		manageUsersUseCase:     manageUsersUseCase,
		flaggedDreamsUseCase:   flaggedDreamsUseCase,
		systemSettingsUseCase:  systemSettingsUseCase,
		systemAnalyticsUseCase: systemAnalyticsUseCase,
		manageTicketsUseCase:   manageTicketsUseCase,
	}
}

// ListUsers handles GET /admin/users requests.
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.manageUsersUseCase.ListUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// GetUser handles GET /admin/users/:id requests.
func (c *AdminController) GetUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	account, err := c.manageUsersUseCase.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(account))
}

// ToggleUserStatus handles PUT /admin/users/:id/toggle-status requests.
func (c *AdminController) ToggleUserStatus(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	account, err := c.manageUsersUseCase.ToggleUserStatus(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(account))
}

// GetUserActivity handles GET /admin/users/:id/data requests.
func (c *AdminController) GetUserActivity(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	activity, err := c.manageUsersUseCase.GetUserActivity(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserActivityResponse(activity))
}

// FlaggedDreams handles GET /admin/dreams/flagged requests. Flagged
// dreams are visible to admins regardless of their privacy setting.
func (c *AdminController) FlaggedDreams(ctx *gin.Context) {
	dreams, err := c.flaggedDreamsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	out := make([]dto.DreamResponse, 0, len(dreams))
	for _, d := range dreams {
		out = append(out, dto.ToDreamResponse(d, nil))
	}
	ctx.JSON(http.StatusOK, out)
}

// SystemAnalytics handles GET /admin/analytics requests.
func (c *AdminController) SystemAnalytics(ctx *gin.Context) {
	result, err := c.systemAnalyticsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// ListTickets handles GET /admin/support/tickets requests.
func (c *AdminController) ListTickets(ctx *gin.Context) {
	tickets, err := c.manageTicketsUseCase.ListAll(ctx.Request.Context(), "")
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTicketListResponse(tickets))
}

// ListTicketsByStatus handles GET /admin/support/tickets/status/:status
// requests.
func (c *AdminController) ListTicketsByStatus(ctx *gin.Context) {
	tickets, err := c.manageTicketsUseCase.ListAll(ctx.Request.Context(), ctx.Param("status"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTicketListResponse(tickets))
}

// ReplyTicket handles POST /admin/support/tickets/:id/reply requests.
func (c *AdminController) ReplyTicket(ctx *gin.Context) {
	ticketID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.TicketReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	ticket, err := c.manageTicketsUseCase.Reply(ctx.Request.Context(), ticketID, req.Reply)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

// UpdateTicketStatus handles PUT /admin/support/tickets/:id/status
// requests.
func (c *AdminController) UpdateTicketStatus(ctx *gin.Context) {
	ticketID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.TicketStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	ticket, err := c.manageTicketsUseCase.UpdateStatus(ctx.Request.Context(), ticketID, req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

// GetSetting handles GET /admin/settings/:key requests.
func (c *AdminController) GetSetting(ctx *gin.Context) {
	setting, err := c.systemSettingsUseCase.Get(ctx.Request.Context(), ctx.Param("key"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}

// UpdateSetting handles PUT /admin/settings/:key requests.
func (c *AdminController) UpdateSetting(ctx *gin.Context) {
	var req dto.UpdateSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	setting, err := c.systemSettingsUseCase.Update(ctx.Request.Context(), ctx.Param("key"), req.Value)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingResponse(setting))
}
