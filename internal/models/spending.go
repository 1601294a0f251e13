package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SpendingIncome  = "income"
	SpendingExpense = "expense"
)

// SpendingRecord is one personal income/expense entry. Note is free text
// (e.g. a monthly commentary) and carries no semantics here.
type SpendingRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Amount     float64   `json:"amount"`
	Kind       string    `gorm:"index" json:"kind"`
	Category   string    `gorm:"index" json:"category"`
	SpentAt    time.Time `gorm:"index" json:"spent_at"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
