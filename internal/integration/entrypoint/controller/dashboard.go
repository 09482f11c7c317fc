// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plata-app/backend/internal/application/usecase/dashboard"
	domainerror "github.com/plata-app/backend/internal/domain/error"
	"github.com/plata-app/backend/internal/integration/entrypoint/dto"
	"github.com/plata-app/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase        *dashboard.GetSummaryUseCase
	weeklyTrendUseCase    *dashboard.GetWeeklyTrendUseCase
	budgetOverviewUseCase *dashboard.GetBudgetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	weeklyTrendUseCase *dashboard.GetWeeklyTrendUseCase,
	budgetOverviewUseCase *dashboard.GetBudgetOverviewUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:        summaryUseCase,
		weeklyTrendUseCase:    weeklyTrendUseCase,
		budgetOverviewUseCase: budgetOverviewUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetSummaryInput{UserID: userID}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetWeeklyTrend handles GET /dashboard/trend requests.
func (c *DashboardController) GetWeeklyTrend(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetWeeklyTrendInput{UserID: userID}

	output, err := c.weeklyTrendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklyTrendResponse(output))
}

// GetBudgetOverview handles GET /dashboard/budget requests.
func (c *DashboardController) GetBudgetOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetBudgetOverviewInput{UserID: userID}

	output, err := c.budgetOverviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetOverviewResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
