// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/plata-app/backend/internal/application/adapter"
	"github.com/plata-app/backend/internal/domain/entity"
	"github.com/plata-app/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates the budget, or replaces the amount when a row already
// exists for the same (user_id, category, month_anchor).
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.CategoryBudget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "category"},
			{Name: "month_anchor"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserAndMonth retrieves all budgets for a user anchored at the given month.
func (r *budgetRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, monthAnchor time.Time) ([]*entity.CategoryBudget, error) {
	var budgetModels []model.CategoryBudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month_anchor = ?", userID, monthAnchor).
		Order("category ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.CategoryBudget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// DeleteByIDAndUser removes a budget owned by the given user.
func (r *budgetRepository) DeleteByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryBudgetModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsByIDAndUser checks if a budget exists for a given ID and user.
func (r *budgetRepository) ExistsByIDAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryBudgetModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
