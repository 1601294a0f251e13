package spending

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"supplier-ledger-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SpendingRecord{}))

	return NewService(db, zap.NewNop())
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(-5, models.SpendingExpense, "food", date("2024-05-01"), "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Create(10, "transfer", "food", date("2024-05-01"), "")
	assert.ErrorIs(t, err, ErrUnknownKind)

	rec, err := svc.Create(10, models.SpendingExpense, "  food ", date("2024-05-01"), "lunch")
	require.NoError(t, err)
	assert.Equal(t, "food", rec.Category)
}

func TestMonthlySummarySignsAmounts(t *testing.T) {
	svc := newTestService(t)

	mustCreate := func(amount float64, kind, day string) {
		t.Helper()
		_, err := svc.Create(amount, kind, "misc", date(day), "")
		require.NoError(t, err)
	}

	mustCreate(3000, models.SpendingIncome, "2024-05-01")
	mustCreate(1200, models.SpendingExpense, "2024-05-10")
	mustCreate(500, models.SpendingExpense, "2024-06-02")

	months, err := svc.MonthlySummary()
	require.NoError(t, err)
	require.Len(t, months, 2)

	assert.Equal(t, "2024-05", months[0].Period)
	assert.Equal(t, 3000.0, months[0].Income)
	assert.Equal(t, 1200.0, months[0].Expense)
	assert.Equal(t, 1800.0, months[0].Net)

	assert.Equal(t, "2024-06", months[1].Period)
	assert.Equal(t, -500.0, months[1].Net)

	years, err := svc.YearlySummary()
	require.NoError(t, err)
	require.Len(t, years, 1)
	assert.Equal(t, "2024", years[0].Period)
	assert.Equal(t, 1300.0, years[0].Net)
}

func TestEditAndDelete(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Create(10, models.SpendingExpense, "food", date("2024-05-01"), "")
	require.NoError(t, err)

	updated, err := svc.Edit(rec.ID, 25, models.SpendingIncome, "salary", date("2024-05-02"), "bonus")
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Amount)
	assert.Equal(t, models.SpendingIncome, updated.Kind)

	_, err = svc.Edit(rec.ID, -1, models.SpendingIncome, "salary", date("2024-05-02"), "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	require.NoError(t, svc.Delete(rec.ID))
	assert.ErrorIs(t, svc.Delete(rec.ID), gorm.ErrRecordNotFound)
}

func TestExportCSV(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(99.5, models.SpendingExpense, "food", date("2024-05-01"), "groceries")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,date,kind,category,amount,note", lines[0])
	assert.Contains(t, lines[1], "2024-05-01,expense,food,99.50,groceries")
}
