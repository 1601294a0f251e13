package invoice

import (
	"strings"

	"supplier-ledger-backend/internal/ledger"
	"supplier-ledger-backend/internal/models"
	"supplier-ledger-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service owns the supplier-invoice ledger: dimension resolution, validated
// writes and derived-field upkeep. It holds no state between calls beyond
// the store handle.
type Service struct {
	invoiceRepo *repository.InvoiceRepository
	dimensions  *repository.DimensionRepository
	db          *gorm.DB
	log         *zap.Logger
}

func NewService(
	invoiceRepo *repository.InvoiceRepository,
	dimensions *repository.DimensionRepository,
	log *zap.Logger,
) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		dimensions:  dimensions,
		db:          invoiceRepo.DB(),
		log:         log,
	}
}

// Create validates the inputs, resolves the supplier/product dimensions
// (creating them on first use) and inserts one ledger line with freshly
// computed totals.
func (s *Service) Create(supplierName, productName, period string, price float64, quantity int, paid float64) (*models.Invoice, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		return nil, ledger.ErrEmptyPeriod
	}
	if err := ledger.Validate(price, quantity, paid); err != nil {
		return nil, err
	}

	supplierID, _, err := s.dimensions.ResolveSupplier(supplierName)
	if err != nil {
		return nil, err
	}
	productID, _, err := s.dimensions.ResolveProduct(supplierID, productName)
	if err != nil {
		return nil, err
	}

	totalAmount, totalDebt := ledger.Compute(price, quantity, paid)

	inv := &models.Invoice{
		ID:          uuid.New(),
		SupplierID:  supplierID,
		ProductID:   productID,
		Period:      period,
		Price:       price,
		Quantity:    quantity,
		TotalAmount: totalAmount,
		TotalPaid:   paid,
		TotalDebt:   totalDebt,
	}
	if err := s.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("period", period),
		zap.Float64("total_amount", totalAmount))

	return inv, nil
}

// Edit re-validates the new values and overwrites the row's inputs together
// with recomputed totals in one update. On validation failure the stored row
// is untouched.
func (s *Service) Edit(id uuid.UUID, price float64, quantity int, paid float64, period string) (*models.Invoice, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		return nil, ledger.ErrEmptyPeriod
	}
	if err := ledger.Validate(price, quantity, paid); err != nil {
		return nil, err
	}

	if _, err := s.invoiceRepo.GetByID(id); err != nil {
		return nil, err
	}

	totalAmount, totalDebt := ledger.Compute(price, quantity, paid)

	err := s.invoiceRepo.Updates(id, map[string]interface{}{
		"price":        price,
		"quantity":     quantity,
		"total_paid":   paid,
		"period":       period,
		"total_amount": totalAmount,
		"total_debt":   totalDebt,
	})
	if err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetByID(id)
}

func (s *Service) Get(id uuid.UUID) (*models.Invoice, error) {
	return s.invoiceRepo.GetByID(id)
}

func (s *Service) Delete(id uuid.UUID) error {
	if _, err := s.invoiceRepo.GetByID(id); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(id)
}

func (s *Service) List(supplierID *uuid.UUID, period string) ([]models.Invoice, error) {
	return s.invoiceRepo.List(supplierID, period)
}

// DebtSummary bundles the dashboard aggregates: outstanding debt per
// supplier and totals per billing period.
type DebtSummary struct {
	BySupplier []repository.SupplierDebt `json:"by_supplier"`
	ByPeriod   []repository.PeriodTotals `json:"by_period"`
}

func (s *Service) DebtSummary() (*DebtSummary, error) {
	bySupplier, err := s.invoiceRepo.DebtBySupplier()
	if err != nil {
		return nil, err
	}
	byPeriod, err := s.invoiceRepo.TotalsByPeriod()
	if err != nil {
		return nil, err
	}
	return &DebtSummary{BySupplier: bySupplier, ByPeriod: byPeriod}, nil
}

// GetBatch returns the audit row for one import batch.
func (s *Service) GetBatch(batchID uuid.UUID) (*models.ImportBatch, error) {
	var batch models.ImportBatch
	if err := s.db.First(&batch, "id = ?", batchID).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}
