package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dreamwell/backend/internal/application/usecase/analytics"
	"github.com/dreamwell/backend/internal/application/usecase/dream"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
	"github.com/dreamwell/backend/internal/integration/entrypoint/dto"
)

// DreamController handles dream journal endpoints.
type DreamController struct {
	createUseCase    *dream.CreateDreamUseCase
	listUseCase      *dream.ListDreamsUseCase
	getUseCase       *dream.GetDreamUseCase
	updateUseCase    *dream.UpdateDreamUseCase
	deleteUseCase    *dream.DeleteDreamUseCase
	interpretUseCase *dream.InterpretDreamUseCase
	analyticsUseCase *analytics.UserAnalyticsUseCase
}

// NewDreamController creates a new dream controller instance.
func NewDreamController(
	createUseCase *dream.CreateDreamUseCase,
	listUseCase *dream.ListDreamsUseCase,
	getUseCase *dream.GetDreamUseCase,
	updateUseCase *dream.UpdateDreamUseCase,
	deleteUseCase *dream.DeleteDreamUseCase,
	interpretUseCase *dream.InterpretDreamUseCase,
	analyticsUseCase *analytics.UserAnalyticsUseCase,
) *DreamController {
	return &DreamController{
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		getUseCase:       getUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		interpretUseCase: interpretUseCase,
		analyticsUseCase: analyticsUseCase,
	}
}

// Create handles POST /dreams requests.
func (c *DreamController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateDreamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	dreamDate, err := time.Parse(dto.DateLayout, req.DreamDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "dreamDate must use the YYYY-MM-DD format",
		})
		return
	}

	input := dream.CreateDreamInput{
		Title:        req.Title,
		DreamText:    req.DreamText,
		Tags:         req.Tags,
		MoodAtWake:   req.MoodAtWake,
		SleepQuality: req.SleepQuality,
		DreamDate:    dreamDate,
		IsPrivate:    req.IsPrivate,
		UserNotes:    req.UserNotes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), userID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.analyticsUseCase.Invalidate(ctx.Request.Context(), userID)

	ctx.JSON(http.StatusCreated, dto.ToDreamResponse(output.Dream, output.Interpretation))
}

// List handles GET /dreams requests.
func (c *DreamController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	items, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDreamListResponse(items))
}

// Search handles GET /dreams/search requests.
func (c *DreamController) Search(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	keyword := ctx.Query("q")
	if keyword == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter q is required",
		})
		return
	}

	items, err := c.listUseCase.Search(ctx.Request.Context(), userID, keyword)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDreamListResponse(items))
}

// Get handles GET /dreams/:id requests.
func (c *DreamController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	dreamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	item, err := c.getUseCase.Execute(ctx.Request.Context(), userID, dreamID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDreamResponse(item.Dream, item.Interpretation))
}

// Update handles PUT /dreams/:id requests.
func (c *DreamController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	dreamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDreamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := dream.UpdateDreamInput{
		Title:        req.Title,
		DreamText:    req.DreamText,
		MoodAtWake:   req.MoodAtWake,
		SleepQuality: req.SleepQuality,
		IsPrivate:    req.IsPrivate,
		UserNotes:    req.UserNotes,
	}
	if req.Tags != nil {
		input.Tags = *req.Tags
	}
	if req.DreamDate != nil {
		dreamDate, err := time.Parse(dto.DateLayout, *req.DreamDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "dreamDate must use the YYYY-MM-DD format",
			})
			return
		}
		input.DreamDate = &dreamDate
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), userID, dreamID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.analyticsUseCase.Invalidate(ctx.Request.Context(), userID)

	ctx.JSON(http.StatusOK, dto.ToDreamResponse(updated, nil))
}

// Delete handles DELETE /dreams/:id requests.
func (c *DreamController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	dreamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), userID, dreamID); err != nil {
		respondError(ctx, err)
		return
	}
	c.analyticsUseCase.Invalidate(ctx.Request.Context(), userID)

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Dream deleted",
	})
}

// Reinterpret handles POST /dreams/:id/reinterpret requests. The stored
// interpretation is replaced by a fresh one.
func (c *DreamController) Reinterpret(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	dreamID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	interpretation, err := c.interpretUseCase.Execute(ctx.Request.Context(), userID, dreamID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInterpretationResponse(interpretation))
}
