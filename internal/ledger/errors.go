package ledger

import (
	"errors"
	"fmt"
)

// User-input errors. All of them reject the offending operation and leave
// stored state untouched; callers re-prompt.
var (
	// ErrEmptyName is returned when a supplier, product or department name
	// is empty after trimming.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrEmptyPeriod is returned when an invoice's period label is empty
	// after trimming.
	ErrEmptyPeriod = errors.New("period must not be empty")

	// ErrInvalidPrice is returned when the unit price is negative.
	ErrInvalidPrice = errors.New("price must not be negative")

	// ErrInvalidQuantity is returned when the quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidPaid is returned when the paid amount is negative.
	ErrInvalidPaid = errors.New("paid amount must not be negative")

	// ErrOverPayment is returned when the paid amount exceeds price*quantity.
	ErrOverPayment = errors.New("paid amount exceeds total amount")

	// ErrImportRejected is returned when a batch contains at least one
	// invalid row. Nothing from the batch is applied.
	ErrImportRejected = errors.New("import rejected, no rows applied")

	// ErrStoreFailure wraps an unexpected persistence failure. The batch in
	// flight is rolled back; the cause is not reported as a row error.
	ErrStoreFailure = errors.New("store failure")
)

// RowError ties a validation failure to its 1-based row position in an
// imported sheet.
type RowError struct {
	Row int   `json:"row"`
	Err error `json:"-"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// RowErrorDetail is the JSON shape persisted on rejected import batches.
type RowErrorDetail struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
