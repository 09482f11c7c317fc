// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of transaction (expense or income).
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindIncome  TransactionKind = "income"
)

// IsValid reports whether the kind is one of the known values.
func (k TransactionKind) IsValid() bool {
	return k == TransactionKindExpense || k == TransactionKindIncome
}

// Transaction represents a single income or expense record.
//
// CreatedAt is the sole temporal anchor: there is no separate transaction
// date, creation time is transaction time. A zero CreatedAt or an unknown
// Kind marks the record as malformed; malformed records are skipped by the
// aggregation engine rather than rejected.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal // Whole currency units (Colombian pesos), non-negative
	Category    *string         // Optional; nil means uncategorized
	Kind        TransactionKind
	Description string
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity anchored at the given instant.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	category *string,
	kind TransactionKind,
	description string,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Kind:        kind,
		Description: description,
		CreatedAt:   createdAt,
	}
}
