// Package category contains quick-pick category list use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/plata-app/backend/internal/application/adapter"
	domainerror "github.com/plata-app/backend/internal/domain/error"
)

const (
	// MaxCategories caps the quick-pick list size.
	MaxCategories = 20
	// MaxCategoryLength is the maximum allowed length for one label.
	MaxCategoryLength = 64
)

// UpdateCategoriesInput represents the input for replacing the quick-pick list.
type UpdateCategoriesInput struct {
	UserID     uuid.UUID
	Categories []string
}

// UpdateCategoriesOutput represents the normalized quick-pick list after update.
type UpdateCategoriesOutput struct {
	Categories []string
}

// UpdateCategoriesUseCase replaces the user's quick-pick category labels.
// Labels only affect the transaction form; existing transactions keep the
// label they were recorded with.
type UpdateCategoriesUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateCategoriesUseCase creates a new UpdateCategoriesUseCase instance.
func NewUpdateCategoriesUseCase(userRepo adapter.UserRepository) *UpdateCategoriesUseCase {
	return &UpdateCategoriesUseCase{
		userRepo: userRepo,
	}
}

// Execute normalizes and stores the new label list. Blank labels are
// dropped and duplicates collapse to their first occurrence.
func (uc *UpdateCategoriesUseCase) Execute(ctx context.Context, input UpdateCategoriesInput) (*UpdateCategoriesOutput, error) {
	seen := make(map[string]struct{}, len(input.Categories))
	normalized := make([]string, 0, len(input.Categories))

	for _, label := range input.Categories {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			continue
		}
		if len(trimmed) > MaxCategoryLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCategoryTooLong,
				fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
				domainerror.ErrCategoryTooLong,
			)
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}

	if len(normalized) > MaxCategories {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTooLong,
			fmt.Sprintf("at most %d categories are allowed", MaxCategories),
			domainerror.ErrCategoryTooLong,
		)
	}

	if err := uc.userRepo.UpdateCategories(ctx, input.UserID, normalized); err != nil {
		return nil, fmt.Errorf("failed to update categories: %w", err)
	}

	return &UpdateCategoriesOutput{Categories: normalized}, nil
}
