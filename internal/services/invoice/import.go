package invoice

import (
	"encoding/json"
	"fmt"
	"strings"

	"supplier-ledger-backend/internal/ledger"
	"supplier-ledger-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RawRow is one parsed spreadsheet line in the shape the import contract
// expects. How it was parsed (CSV, Excel) is the caller's business.
type RawRow struct {
	SupplierName string  `json:"supplier_name"`
	ProductName  string  `json:"product_name"`
	Period       string  `json:"period"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Paid         float64 `json:"paid"`
}

// ImportReport is the outcome of one batch import.
type ImportReport struct {
	BatchID      uuid.UUID         `json:"batch_id"`
	TotalRows    int               `json:"total_rows"`
	Invoices     int               `json:"invoices"`
	NewSuppliers int               `json:"new_suppliers"`
	NewProducts  int               `json:"new_products"`
	Rejected     bool              `json:"rejected"`
	RowErrors    []ledger.RowError `json:"row_errors,omitempty"`
}

// ImportRows applies a whole spreadsheet or none of it. Every row is
// validated up front; one bad row rejects the batch with per-row reasons
// and no writes. Valid batches run inside a single transaction, so a store
// failure mid-batch leaves nothing behind either. The audit row recording
// the outcome is written outside that transaction so it survives rollback.
func (s *Service) ImportRows(filename string, rows []RawRow) (*ImportReport, error) {
	report := &ImportReport{TotalRows: len(rows)}

	for i, row := range rows {
		if err := validateRow(row); err != nil {
			report.RowErrors = append(report.RowErrors, ledger.RowError{Row: i + 1, Err: err})
		}
	}
	if len(report.RowErrors) > 0 {
		report.Rejected = true
		report.BatchID = s.recordBatch(filename, report, models.ImportRejected)
		s.log.Warn("import rejected",
			zap.String("filename", filename),
			zap.Int("rows", len(rows)),
			zap.Int("invalid_rows", len(report.RowErrors)))
		return report, ledger.ErrImportRejected
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		dims := s.dimensions.WithTx(tx)
		invoices := s.invoiceRepo.WithTx(tx)

		for _, row := range rows {
			supplierID, newSupplier, err := dims.ResolveSupplier(row.SupplierName)
			if err != nil {
				return err
			}
			productID, newProduct, err := dims.ResolveProduct(supplierID, row.ProductName)
			if err != nil {
				return err
			}
			if newSupplier {
				report.NewSuppliers++
			}
			if newProduct {
				report.NewProducts++
			}

			totalAmount, totalDebt := ledger.Compute(row.Price, row.Quantity, row.Paid)
			inv := &models.Invoice{
				ID:          uuid.New(),
				SupplierID:  supplierID,
				ProductID:   productID,
				Period:      strings.TrimSpace(row.Period),
				Price:       row.Price,
				Quantity:    row.Quantity,
				TotalAmount: totalAmount,
				TotalPaid:   row.Paid,
				TotalDebt:   totalDebt,
			}
			if err := invoices.Create(inv); err != nil {
				return err
			}
			report.Invoices++
		}
		return nil
	})
	if err != nil {
		report.Invoices = 0
		report.NewSuppliers = 0
		report.NewProducts = 0
		report.BatchID = s.recordBatch(filename, report, models.ImportFailed)
		s.log.Error("import failed, batch rolled back",
			zap.String("filename", filename), zap.Error(err))
		return report, fmt.Errorf("%w: %v", ledger.ErrStoreFailure, err)
	}

	report.BatchID = s.recordBatch(filename, report, models.ImportCompleted)
	s.log.Info("import completed",
		zap.String("filename", filename),
		zap.Int("invoices", report.Invoices),
		zap.Int("new_suppliers", report.NewSuppliers),
		zap.Int("new_products", report.NewProducts))
	return report, nil
}

// validateRow runs the ledger rules plus the non-empty checks on names and
// period. Pure, mirrors what Create enforces one row at a time.
func validateRow(row RawRow) error {
	if strings.TrimSpace(row.SupplierName) == "" || strings.TrimSpace(row.ProductName) == "" {
		return ledger.ErrEmptyName
	}
	if strings.TrimSpace(row.Period) == "" {
		return ledger.ErrEmptyPeriod
	}
	return ledger.Validate(row.Price, row.Quantity, row.Paid)
}

// recordBatch persists the audit row for an import attempt and returns its
// id. Audit write failures are logged, not propagated; they must not mask
// the import outcome.
func (s *Service) recordBatch(filename string, report *ImportReport, status string) uuid.UUID {
	batch := &models.ImportBatch{
		ID:           uuid.New(),
		Filename:     filename,
		TotalRows:    report.TotalRows,
		Invoices:     report.Invoices,
		NewSuppliers: report.NewSuppliers,
		NewProducts:  report.NewProducts,
		Status:       status,
	}

	if len(report.RowErrors) > 0 {
		details := make([]ledger.RowErrorDetail, 0, len(report.RowErrors))
		for _, re := range report.RowErrors {
			details = append(details, ledger.RowErrorDetail{Row: re.Row, Reason: re.Err.Error()})
		}
		if raw, err := json.Marshal(details); err == nil {
			batch.ErrorDetail = raw
		}
	}

	if err := s.db.Create(batch).Error; err != nil {
		s.log.Error("record import batch", zap.Error(err))
	}
	return batch.ID
}
