package repository

import (
	"supplier-ledger-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *InvoiceRepository) WithTx(tx *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: tx}
}

func (r *InvoiceRepository) Create(inv *models.Invoice) error {
	return r.db.Create(inv).Error
}

// GetByID fetch a single invoice by ID
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Updates applies the given column changes to one invoice row.
func (r *InvoiceRepository) Updates(id uuid.UUID, changes map[string]interface{}) error {
	return r.db.Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(changes).Error
}

func (r *InvoiceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Invoice{}, "id = ?", id).Error
}

// List returns invoices newest first, optionally filtered by supplier
// and/or period.
func (r *InvoiceRepository) List(supplierID *uuid.UUID, period string) ([]models.Invoice, error) {
	var invoices []models.Invoice

	query := r.db.Model(&models.Invoice{}).Order("created_at DESC")

	if supplierID != nil {
		query = query.Where("supplier_id = ?", *supplierID)
	}
	if period != "" {
		query = query.Where("period = ?", period)
	}

	err := query.Find(&invoices).Error
	return invoices, err
}

// SupplierDebt is one row of the per-supplier outstanding-debt summary.
type SupplierDebt struct {
	SupplierID   uuid.UUID `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	TotalDebt    float64   `json:"total_debt"`
}

// PeriodTotals is one row of the per-period billing summary.
type PeriodTotals struct {
	Period      string  `json:"period"`
	TotalAmount float64 `json:"total_amount"`
	TotalPaid   float64 `json:"total_paid"`
	TotalDebt   float64 `json:"total_debt"`
}

// DebtBySupplier aggregates outstanding debt per supplier, largest first.
func (r *InvoiceRepository) DebtBySupplier() ([]SupplierDebt, error) {
	var rows []SupplierDebt
	err := r.db.Model(&models.Invoice{}).
		Select("invoices.supplier_id, suppliers.name AS supplier_name, COALESCE(SUM(invoices.total_debt),0) AS total_debt").
		Joins("JOIN suppliers ON suppliers.id = invoices.supplier_id").
		Group("invoices.supplier_id, suppliers.name").
		Order("total_debt DESC").
		Scan(&rows).Error
	return rows, err
}

// TotalsByPeriod aggregates amounts per billing period in label order.
func (r *InvoiceRepository) TotalsByPeriod() ([]PeriodTotals, error) {
	var rows []PeriodTotals
	err := r.db.Model(&models.Invoice{}).
		Select("period, COALESCE(SUM(total_amount),0) AS total_amount, COALESCE(SUM(total_paid),0) AS total_paid, COALESCE(SUM(total_debt),0) AS total_debt").
		Group("period").
		Order("period ASC").
		Scan(&rows).Error
	return rows, err
}
