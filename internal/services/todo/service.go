package todo

import (
	"errors"
	"strings"
	"time"

	"supplier-ledger-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrEmptyTask is returned when a task is empty after trimming.
var ErrEmptyTask = errors.New("task must not be empty")

// Service manages the personal to-do list.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

func (s *Service) Create(task string, dueDate time.Time) (*models.Todo, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return nil, ErrEmptyTask
	}

	t := &models.Todo{
		ID:      uuid.New(),
		Task:    task,
		DueDate: dueDate,
	}
	if err := s.db.Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// ListByDate returns the tasks due on the given calendar day.
func (s *Service) ListByDate(day time.Time) ([]models.Todo, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var todos []models.Todo
	err := s.db.
		Where("due_date >= ? AND due_date < ?", start, end).
		Order("created_at ASC").
		Find(&todos).Error
	return todos, err
}

func (s *Service) List() ([]models.Todo, error) {
	var todos []models.Todo
	err := s.db.Order("due_date ASC").Find(&todos).Error
	return todos, err
}

// Toggle flips the done flag and returns the updated task.
func (s *Service) Toggle(id uuid.UUID) (*models.Todo, error) {
	var t models.Todo
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&t).Update("done", !t.Done).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) Edit(id uuid.UUID, task string, dueDate time.Time) (*models.Todo, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return nil, ErrEmptyTask
	}

	var t models.Todo
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	err := s.db.Model(&t).Updates(map[string]interface{}{
		"task":     task,
		"due_date": dueDate,
	}).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) Delete(id uuid.UUID) error {
	var t models.Todo
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.Delete(&t).Error
}
