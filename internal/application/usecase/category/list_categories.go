// Package category contains quick-pick category list use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/plata-app/backend/internal/application/adapter"
	domainerror "github.com/plata-app/backend/internal/domain/error"
)

// ListCategoriesInput represents the input for listing quick-pick categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput represents the user's quick-pick category labels.
type ListCategoriesOutput struct {
	Categories []string
}

// ListCategoriesUseCase returns the labels offered when recording a transaction.
type ListCategoriesUseCase struct {
	userRepo adapter.UserRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(userRepo adapter.UserRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		userRepo: userRepo,
	}
}

// Execute retrieves the user's quick-pick category list.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	return &ListCategoriesOutput{Categories: user.Categories}, nil
}
