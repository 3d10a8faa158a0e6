package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dreamwell/backend/internal/application/usecase/analytics"
	"github.com/dreamwell/backend/internal/application/usecase/mood"
	domainerror "github.com/dreamwell/backend/internal/domain/error"
	"github.com/dreamwell/backend/internal/integration/entrypoint/dto"
)

// MoodController handles daily mood log endpoints.
type MoodController struct {
	logUseCase       *mood.LogMoodUseCase
	listUseCase      *mood.ListMoodsUseCase
	updateUseCase    *mood.UpdateMoodUseCase
	deleteUseCase    *mood.DeleteMoodUseCase
	analyticsUseCase *analytics.UserAnalyticsUseCase
}

// NewMoodController creates a new mood controller instance.
func NewMoodController(
	logUseCase *mood.LogMoodUseCase,
	listUseCase *mood.ListMoodsUseCase,
	updateUseCase *mood.UpdateMoodUseCase,
	deleteUseCase *mood.DeleteMoodUseCase,
	analyticsUseCase *analytics.UserAnalyticsUseCase,
) *MoodController {
	return &MoodController{
		logUseCase:       logUseCase,
		listUseCase:      listUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		analyticsUseCase: analyticsUseCase,
	}
}

// Log handles POST /moods requests. Logging a mood for a date that
// already has one overwrites the existing entry.
func (c *MoodController) Log(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.LogMoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	entryDate, err := time.Parse(dto.DateLayout, req.EntryDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "entryDate must use the YYYY-MM-DD format",
		})
		return
	}

	input := mood.LogMoodInput{
		EntryDate: entryDate,
		Mood:      req.Mood,
		Notes:     req.Notes,
		Triggers:  req.Triggers,
	}

	entry, err := c.logUseCase.Execute(ctx.Request.Context(), userID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.analyticsUseCase.Invalidate(ctx.Request.Context(), userID)

	ctx.JSON(http.StatusCreated, dto.ToMoodEntryResponse(entry))
}

// List handles GET /moods requests.
func (c *MoodController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	entries, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMoodEntryListResponse(entries))
}

// ListRange handles GET /moods/range requests. Both bounds are required
// and inclusive.
func (c *MoodController) ListRange(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	from, err := time.Parse(dto.DateLayout, ctx.Query("from"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "from must use the YYYY-MM-DD format",
		})
		return
	}
	to, err := time.Parse(dto.DateLayout, ctx.Query("to"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "to must use the YYYY-MM-DD format",
		})
		return
	}

	entries, err := c.listUseCase.Range(ctx.Request.Context(), userID, from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMoodEntryListResponse(entries))
}

// Update handles PUT /moods/:id requests.
func (c *MoodController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := mood.UpdateMoodInput{
		Mood:     req.Mood,
		Notes:    req.Notes,
		Triggers: req.Triggers,
	}

	entry, err := c.updateUseCase.Execute(ctx.Request.Context(), userID, entryID, input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.analyticsUseCase.Invalidate(ctx.Request.Context(), userID)

	ctx.JSON(http.StatusOK, dto.ToMoodEntryResponse(entry))
}

// Delete handles DELETE /moods/:id requests.
func (c *MoodController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), userID, entryID); err != nil {
		respondError(ctx, err)
		return
	}
	c.analyticsUseCase.Invalidate(ctx.Request.Context(), userID)

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Mood entry deleted",
	})
}
