package repository

import (
	"strings"

	"supplier-ledger-backend/internal/ledger"
	"supplier-ledger-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DimensionRepository resolves supplier/product/department names to stable
// identifiers, creating a row on first reference. Lookup is exact on the
// trimmed name; resolution is a single FirstOrCreate against the store so
// check-then-insert cannot interleave.
type DimensionRepository struct {
	db *gorm.DB
}

func NewDimensionRepository(db *gorm.DB) *DimensionRepository {
	return &DimensionRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *DimensionRepository) WithTx(tx *gorm.DB) *DimensionRepository {
	return &DimensionRepository{db: tx}
}

// ResolveSupplier returns the id for the named supplier, creating it if
// missing. The second return reports whether a new row was inserted.
func (r *DimensionRepository) ResolveSupplier(name string) (uuid.UUID, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, false, ledger.ErrEmptyName
	}

	var supplier models.Supplier
	res := r.db.
		Where("name = ?", name).
		Attrs(models.Supplier{ID: uuid.New(), Name: name}).
		FirstOrCreate(&supplier)
	if res.Error != nil {
		return uuid.Nil, false, res.Error
	}
	return supplier.ID, res.RowsAffected > 0, nil
}

// ResolveProduct returns the id for the named product under the given
// supplier. The same name under another supplier is a distinct product.
func (r *DimensionRepository) ResolveProduct(supplierID uuid.UUID, name string) (uuid.UUID, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, false, ledger.ErrEmptyName
	}

	var product models.Product
	res := r.db.
		Where("name = ? AND supplier_id = ?", name, supplierID).
		Attrs(models.Product{ID: uuid.New(), Name: name, SupplierID: supplierID}).
		FirstOrCreate(&product)
	if res.Error != nil {
		return uuid.Nil, false, res.Error
	}
	return product.ID, res.RowsAffected > 0, nil
}

// ResolveDepartment returns the id for the named department, creating it
// if missing.
func (r *DimensionRepository) ResolveDepartment(name string) (uuid.UUID, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, false, ledger.ErrEmptyName
	}

	var dept models.Department
	res := r.db.
		Where("name = ?", name).
		Attrs(models.Department{ID: uuid.New(), Name: name}).
		FirstOrCreate(&dept)
	if res.Error != nil {
		return uuid.Nil, false, res.Error
	}
	return dept.ID, res.RowsAffected > 0, nil
}
