package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Import batch outcomes.
const (
	ImportCompleted = "completed"
	ImportRejected  = "rejected" // at least one row failed validation, nothing applied
	ImportFailed    = "failed"   // store failure mid-batch, rolled back
)

// ImportBatch is the audit record of one spreadsheet import. ErrorDetail
// holds the per-row rejection reasons as JSON for rejected batches.
type ImportBatch struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Filename     string         `json:"filename"`
	TotalRows    int            `json:"total_rows"`
	Invoices     int            `json:"invoices"`
	NewSuppliers int            `json:"new_suppliers"`
	NewProducts  int            `json:"new_products"`
	Status       string         `gorm:"index" json:"status"`
	ErrorDetail  datatypes.JSON `json:"error_detail,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
