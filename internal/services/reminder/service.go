package reminder

import (
	"errors"
	"strings"
	"time"

	"supplier-ledger-backend/internal/ledger"
	"supplier-ledger-backend/internal/models"
	"supplier-ledger-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrUnknownStatus is returned when a document status is not one of the
// fixed enumeration.
var ErrUnknownStatus = errors.New("unknown document status")

// DocumentView is a document annotated with its department name and the
// urgency projected at read time.
type DocumentView struct {
	models.Document
	DepartmentName string `json:"department_name"`
	Urgency        string `json:"urgency"`
}

// Service manages department document reminders.
type Service struct {
	dimensions *repository.DimensionRepository
	db         *gorm.DB
	log        *zap.Logger
}

func NewService(db *gorm.DB, dimensions *repository.DimensionRepository, log *zap.Logger) *Service {
	return &Service{dimensions: dimensions, db: db, log: log}
}

func validStatus(status string) bool {
	switch status {
	case models.DocumentInProgress, models.DocumentDone, models.DocumentOnHold:
		return true
	}
	return false
}

// Create registers a document under the named department, creating the
// department on first reference.
func (s *Service) Create(name, departmentName string, deadline time.Time, status string) (*models.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ledger.ErrEmptyName
	}
	if !validStatus(status) {
		return nil, ErrUnknownStatus
	}

	departmentID, _, err := s.dimensions.ResolveDepartment(departmentName)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		ID:           uuid.New(),
		Name:         name,
		DepartmentID: departmentID,
		Deadline:     deadline,
		Status:       status,
	}
	if err := s.db.Create(doc).Error; err != nil {
		return nil, err
	}

	s.log.Info("document created",
		zap.String("document_id", doc.ID.String()),
		zap.String("department", departmentName))
	return doc, nil
}

// Edit overwrites name, deadline and status. The stored row is untouched
// when validation fails.
func (s *Service) Edit(id uuid.UUID, name string, deadline time.Time, status string) (*models.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ledger.ErrEmptyName
	}
	if !validStatus(status) {
		return nil, ErrUnknownStatus
	}

	var doc models.Document
	if err := s.db.First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}

	err := s.db.Model(&doc).Updates(map[string]interface{}{
		"name":     name,
		"deadline": deadline,
		"status":   status,
	}).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) Delete(id uuid.UUID) error {
	var doc models.Document
	if err := s.db.First(&doc, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.Delete(&doc).Error
}

// List returns all documents by nearest deadline first, each annotated with
// its projected urgency. When overdueOnly is set only overdue documents are
// returned (the source app's late-document alert).
func (s *Service) List(overdueOnly bool) ([]DocumentView, error) {
	var docs []models.Document
	if err := s.db.Order("deadline ASC").Find(&docs).Error; err != nil {
		return nil, err
	}

	var depts []models.Department
	if err := s.db.Find(&depts).Error; err != nil {
		return nil, err
	}
	deptNames := make(map[uuid.UUID]string, len(depts))
	for _, d := range depts {
		deptNames[d.ID] = d.Name
	}

	now := time.Now()
	views := make([]DocumentView, 0, len(docs))
	for _, doc := range docs {
		urgency := Urgency(doc.Deadline, doc.Status, now)
		if overdueOnly && urgency != UrgencyOverdue {
			continue
		}
		views = append(views, DocumentView{
			Document:       doc,
			DepartmentName: deptNames[doc.DepartmentID],
			Urgency:        urgency,
		})
	}
	return views, nil
}
