// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/plata-app/backend/internal/application/adapter"
	"github.com/plata-app/backend/internal/domain/entity"
	domainerror "github.com/plata-app/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxCategoryLength is the maximum allowed length for category labels.
	MaxCategoryLength = 64
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    *string
	Kind        entity.TransactionKind
	Description string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.DashboardCache
	clock           adapter.Clock
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.DashboardCache,
	clock adapter.Clock,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
		clock:           clock,
	}
}

// Execute performs the transaction creation. The record is anchored at the
// current instant: creation time is transaction time.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction kind must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	// Empty or whitespace-only category labels are stored as uncategorized.
	category := input.Category
	if category != nil {
		trimmed := strings.TrimSpace(*category)
		if trimmed == "" {
			category = nil
		} else {
			if len(trimmed) > MaxCategoryLength {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeCategoryTooLong,
					fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
					domainerror.ErrCategoryTooLong,
				)
			}
			category = &trimmed
		}
	}

	tx := entity.NewTransaction(
		input.UserID,
		input.Amount,
		category,
		input.Kind,
		strings.TrimSpace(input.Description),
		uc.clock.Now(),
	)

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := uc.cache.InvalidateUser(ctx, input.UserID.String()); err != nil {
		slog.Warn("dashboard cache invalidation failed", "user_id", input.UserID, "error", err)
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}
