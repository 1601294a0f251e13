package invoice

import (
	"testing"

	"supplier-ledger-backend/internal/ledger"
	"supplier-ledger-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportAllOrNothing(t *testing.T) {
	svc, db := newTestService(t)

	rows := []RawRow{
		{SupplierName: "Acme", ProductName: "Widget", Period: "2024-01", Price: 1000, Quantity: 2, Paid: 1500},
		{SupplierName: "Acme", ProductName: "Bolt", Period: "2024-01", Price: 50, Quantity: 10, Paid: 500},
		{SupplierName: "Globex", ProductName: "Widget", Period: "2024-02", Price: 75, Quantity: 4, Paid: 0},
		{SupplierName: "Globex", ProductName: "Nut", Period: "2024-02", Price: 20, Quantity: 0, Paid: 0}, // bad quantity
	}

	report, err := svc.ImportRows("batch.csv", rows)
	assert.ErrorIs(t, err, ledger.ErrImportRejected)

	require.Len(t, report.RowErrors, 1)
	assert.Equal(t, 4, report.RowErrors[0].Row)
	assert.ErrorIs(t, report.RowErrors[0], ledger.ErrInvalidQuantity)
	assert.True(t, report.Rejected)

	// nothing from the batch was applied, valid rows included
	var invoices, suppliers, products int64
	db.Model(&models.Invoice{}).Count(&invoices)
	db.Model(&models.Supplier{}).Count(&suppliers)
	db.Model(&models.Product{}).Count(&products)
	assert.EqualValues(t, 0, invoices)
	assert.EqualValues(t, 0, suppliers)
	assert.EqualValues(t, 0, products)

	// the rejection is still audited
	var batch models.ImportBatch
	require.NoError(t, db.First(&batch, "id = ?", report.BatchID).Error)
	assert.Equal(t, models.ImportRejected, batch.Status)
	assert.Equal(t, 4, batch.TotalRows)
	assert.NotEmpty(t, batch.ErrorDetail)
}

func TestImportSuccess(t *testing.T) {
	svc, db := newTestService(t)

	rows := []RawRow{
		{SupplierName: "Acme", ProductName: "Widget", Period: "2024-01", Price: 1000, Quantity: 2, Paid: 1500},
		{SupplierName: "Acme", ProductName: "Bolt", Period: "2024-01", Price: 50, Quantity: 10, Paid: 500},
		{SupplierName: "Globex", ProductName: "Widget", Period: "2024-02", Price: 75, Quantity: 4, Paid: 300},
	}

	report, err := svc.ImportRows("batch.csv", rows)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Invoices)
	assert.Equal(t, 2, report.NewSuppliers)
	assert.Equal(t, 3, report.NewProducts) // Widget under two suppliers is two products
	assert.False(t, report.Rejected)

	var inv models.Invoice
	require.NoError(t, db.First(&inv, "period = ? AND price = ?", "2024-01", 1000.0).Error)
	assert.Equal(t, 2000.0, inv.TotalAmount)
	assert.Equal(t, 500.0, inv.TotalDebt)

	var batch models.ImportBatch
	require.NoError(t, db.First(&batch, "id = ?", report.BatchID).Error)
	assert.Equal(t, models.ImportCompleted, batch.Status)
	assert.Equal(t, 3, batch.Invoices)
	assert.Equal(t, 2, batch.NewSuppliers)
}

func TestImportReusesExistingDimensions(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.Create("Acme", "Widget", "2023-12", 10, 1, 0)
	require.NoError(t, err)

	rows := []RawRow{
		{SupplierName: "Acme", ProductName: "Widget", Period: "2024-01", Price: 100, Quantity: 1, Paid: 0},
		{SupplierName: "Acme", ProductName: "Bolt", Period: "2024-01", Price: 100, Quantity: 1, Paid: 0},
	}

	report, err := svc.ImportRows("batch.csv", rows)
	require.NoError(t, err)

	assert.Equal(t, 0, report.NewSuppliers)
	assert.Equal(t, 1, report.NewProducts)

	var suppliers int64
	db.Model(&models.Supplier{}).Count(&suppliers)
	assert.EqualValues(t, 1, suppliers)
}

func TestImportRejectsEmptyNames(t *testing.T) {
	svc, db := newTestService(t)

	rows := []RawRow{
		{SupplierName: "Acme", ProductName: "Widget", Period: "2024-01", Price: 100, Quantity: 1, Paid: 0},
		{SupplierName: "  ", ProductName: "Widget", Period: "2024-01", Price: 100, Quantity: 1, Paid: 0},
		{SupplierName: "Acme", ProductName: "Bolt", Period: " ", Price: 100, Quantity: 1, Paid: 0},
	}

	report, err := svc.ImportRows("batch.csv", rows)
	assert.ErrorIs(t, err, ledger.ErrImportRejected)

	require.Len(t, report.RowErrors, 2)
	assert.Equal(t, 2, report.RowErrors[0].Row)
	assert.ErrorIs(t, report.RowErrors[0], ledger.ErrEmptyName)
	assert.Equal(t, 3, report.RowErrors[1].Row)
	assert.ErrorIs(t, report.RowErrors[1], ledger.ErrEmptyPeriod)

	var invoices int64
	db.Model(&models.Invoice{}).Count(&invoices)
	assert.EqualValues(t, 0, invoices)
}

func TestImportStoreFailureRollsBack(t *testing.T) {
	svc, db := newTestService(t)

	// make every invoice insert fail mid-transaction
	require.NoError(t, db.Migrator().DropTable(&models.Invoice{}))

	rows := []RawRow{
		{SupplierName: "Acme", ProductName: "Widget", Period: "2024-01", Price: 1000, Quantity: 2, Paid: 1500},
		{SupplierName: "Globex", ProductName: "Bolt", Period: "2024-02", Price: 50, Quantity: 10, Paid: 0},
	}

	report, err := svc.ImportRows("batch.csv", rows)
	assert.ErrorIs(t, err, ledger.ErrStoreFailure)

	// the dimensions resolved before the failing insert roll back with it
	var suppliers, products int64
	db.Model(&models.Supplier{}).Count(&suppliers)
	db.Model(&models.Product{}).Count(&products)
	assert.EqualValues(t, 0, suppliers)
	assert.EqualValues(t, 0, products)

	// counters report nothing applied, and no row-level blame is assigned
	assert.Equal(t, 0, report.Invoices)
	assert.Equal(t, 0, report.NewSuppliers)
	assert.Equal(t, 0, report.NewProducts)
	assert.Empty(t, report.RowErrors)

	// the failure is still audited, outside the rolled-back transaction
	var batch models.ImportBatch
	require.NoError(t, db.First(&batch, "id = ?", report.BatchID).Error)
	assert.Equal(t, models.ImportFailed, batch.Status)
	assert.Equal(t, 2, batch.TotalRows)
	assert.Equal(t, 0, batch.Invoices)
}

func TestImportEmptyBatch(t *testing.T) {
	svc, _ := newTestService(t)

	report, err := svc.ImportRows("empty.csv", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Invoices)
	assert.Equal(t, 0, report.TotalRows)
}
