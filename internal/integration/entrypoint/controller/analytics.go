package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamwell/backend/internal/application/usecase/analytics"
)

// AnalyticsController handles personal analytics and data export
// endpoints. The use case outputs carry their own JSON shape, so no
// separate DTO layer sits in between.
type AnalyticsController struct {
	userAnalyticsUseCase *analytics.UserAnalyticsUseCase
	exportDataUseCase    *analytics.ExportDataUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	userAnalyticsUseCase *analytics.UserAnalyticsUseCase,
	exportDataUseCase *analytics.ExportDataUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		userAnalyticsUseCase: userAnalyticsUseCase,
		exportDataUseCase:    exportDataUseCase,
	}
}

// Get handles GET /analytics requests.
func (c *AnalyticsController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	result, err := c.userAnalyticsUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Export handles GET /analytics/export requests. The response is served
// as an attachment so browsers download it.
func (c *AnalyticsController) Export(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	export, err := c.exportDataUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="dreamwell-export.json"`)
	ctx.JSON(http.StatusOK, export)
}
