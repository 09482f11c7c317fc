// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/plata-app/backend/internal/application/usecase/budget"
	domainerror "github.com/plata-app/backend/internal/domain/error"
	"github.com/plata-app/backend/internal/integration/entrypoint/dto"
	"github.com/plata-app/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles category budget endpoints.
type BudgetController struct {
	setUseCase    *budget.SetBudgetUseCase
	listUseCase   *budget.ListBudgetsUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	setUseCase *budget.SetBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		setUseCase:    setUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Set handles PUT /budgets requests.
// Setting a budget for a category that already has one in the current month
// replaces the amount.
func (c *BudgetController) Set(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyBudgetCategory),
		})
		return
	}

	input := budget.SetBudgetInput{
		UserID:   userID,
		Category: req.Category,
		Amount:   decimal.NewFromFloat(req.Amount),
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := budget.ListBudgetsInput{UserID: userID}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	budgets := make([]dto.BudgetResponse, 0, len(output.Budgets))
	for _, b := range output.Budgets {
		budgets = append(budgets, dto.ToBudgetResponse(b))
	}

	ctx.JSON(http.StatusOK, dto.BudgetListResponse{Budgets: budgets})
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID",
			Code:  string(domainerror.ErrCodeBudgetNotFound),
		})
		return
	}

	input := budget.DeleteBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeEmptyBudgetCategory,
		domainerror.ErrCodeInvalidBudgetMonth:
		return http.StatusBadRequest
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
