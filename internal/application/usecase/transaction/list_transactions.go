// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/plata-app/backend/internal/application/adapter"
)

const (
	// DefaultPageSize is the page size used when none is requested.
	DefaultPageSize = 20
	// MaxPageSize caps the requested page size.
	MaxPageSize = 100
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Filter     adapter.TransactionFilter
	Pagination adapter.TransactionPagination
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Result *adapter.TransactionListResult
}

// ListTransactionsUseCase handles transaction listing with filters and pagination.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves a page of the user's transactions, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	pagination := input.Pagination
	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.Limit < 1 {
		pagination.Limit = DefaultPageSize
	}
	if pagination.Limit > MaxPageSize {
		pagination.Limit = MaxPageSize
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, input.Filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Result: result}, nil
}
