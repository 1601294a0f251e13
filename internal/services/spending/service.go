package spending

import (
	"errors"
	"strings"
	"time"

	"supplier-ledger-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrInvalidAmount is returned when the amount is negative.
	ErrInvalidAmount = errors.New("amount must not be negative")

	// ErrUnknownKind is returned when the kind is neither income nor expense.
	ErrUnknownKind = errors.New("unknown record kind")
)

// Service manages personal income/expense records.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

func validKind(kind string) bool {
	return kind == models.SpendingIncome || kind == models.SpendingExpense
}

func (s *Service) Create(amount float64, kind, category string, spentAt time.Time, note string) (*models.SpendingRecord, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	if !validKind(kind) {
		return nil, ErrUnknownKind
	}

	rec := &models.SpendingRecord{
		ID:       uuid.New(),
		Amount:   amount,
		Kind:     kind,
		Category: strings.TrimSpace(category),
		SpentAt:  spentAt,
		Note:     note,
	}
	if err := s.db.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Edit(id uuid.UUID, amount float64, kind, category string, spentAt time.Time, note string) (*models.SpendingRecord, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	if !validKind(kind) {
		return nil, ErrUnknownKind
	}

	var rec models.SpendingRecord
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	err := s.db.Model(&rec).Updates(map[string]interface{}{
		"amount":   amount,
		"kind":     kind,
		"category": strings.TrimSpace(category),
		"spent_at": spentAt,
		"note":     note,
	}).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Service) Delete(id uuid.UUID) error {
	var rec models.SpendingRecord
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.Delete(&rec).Error
}

// List returns all records newest first.
func (s *Service) List() ([]models.SpendingRecord, error) {
	var recs []models.SpendingRecord
	err := s.db.Order("spent_at DESC").Find(&recs).Error
	return recs, err
}
