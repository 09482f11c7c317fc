// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/plata-app/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required,gte=0"`
	Kind        string  `json:"kind" binding:"required,oneof=expense income"`
	Category    *string `json:"category,omitempty" binding:"omitempty,max=64"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// ListTransactionsQuery represents the query parameters for listing transactions.
type ListTransactionsQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Category  string `form:"category"`
	Kind      string `form:"kind" binding:"omitempty,oneof=expense income"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      string    `json:"amount"`
	Kind        string    `json:"kind"`
	Category    *string   `json:"category,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// ToTransactionResponse converts a domain Transaction entity to a response DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Amount:      txn.Amount.String(),
		Kind:        string(txn.Kind),
		Category:    txn.Category,
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
	}
}
