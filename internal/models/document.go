package models

import (
	"time"

	"github.com/google/uuid"
)

// Document statuses. A done document is never flagged by the deadline check.
const (
	DocumentInProgress = "in_progress"
	DocumentDone       = "done"
	DocumentOnHold     = "on_hold"
)

type Document struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `json:"name"`
	DepartmentID uuid.UUID `gorm:"type:uuid;index" json:"department_id"`
	Deadline     time.Time `json:"deadline"`
	Status       string    `gorm:"index" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
