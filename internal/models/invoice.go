package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice is one ledger line: a supplier/product pair billed in a period.
// TotalAmount and TotalDebt are derived from Price/Quantity/TotalPaid and
// recomputed on every write; they are never authoritative on their own.
type Invoice struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SupplierID  uuid.UUID `gorm:"type:uuid;index" json:"supplier_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Period      string    `gorm:"index" json:"period"` // free-text month label, e.g. "2024-05"
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
	TotalPaid   float64   `json:"total_paid"`
	TotalDebt   float64   `json:"total_debt"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
