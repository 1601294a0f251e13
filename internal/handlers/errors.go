package handler

import (
	"errors"
	"net/http"

	"supplier-ledger-backend/internal/ledger"
	"supplier-ledger-backend/internal/services/reminder"
	"supplier-ledger-backend/internal/services/spending"
	"supplier-ledger-backend/internal/services/todo"

	"gorm.io/gorm"
)

// statusForError maps service errors onto HTTP codes: user-input errors are
// 400, a rejected import batch is 422, missing rows 404, store trouble and
// anything unrecognized an opaque 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrImportRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrStoreFailure):
		return http.StatusInternalServerError
	case errors.Is(err, ledger.ErrEmptyName),
		errors.Is(err, ledger.ErrEmptyPeriod),
		errors.Is(err, ledger.ErrInvalidPrice),
		errors.Is(err, ledger.ErrInvalidQuantity),
		errors.Is(err, ledger.ErrInvalidPaid),
		errors.Is(err, ledger.ErrOverPayment),
		errors.Is(err, reminder.ErrUnknownStatus),
		errors.Is(err, todo.ErrEmptyTask),
		errors.Is(err, spending.ErrInvalidAmount),
		errors.Is(err, spending.ErrUnknownKind):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
