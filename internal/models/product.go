package models

import (
	"time"

	"github.com/google/uuid"
)

// Product name is only unique within its supplier; the same name under
// two suppliers is two distinct products.
type Product struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"uniqueIndex:idx_products_supplier_name" json:"name"`
	SupplierID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_products_supplier_name" json:"supplier_id"`
	CreatedAt  time.Time `json:"created_at"`
}
