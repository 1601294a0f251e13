// Package ledger holds the pure reconciliation rules for supplier invoices:
// input validation and derived-field arithmetic. Nothing here touches the
// database; persistence lives in the repositories and services.
package ledger

// Validate checks raw invoice inputs. It is pure and returns the first
// failing rule in a fixed order: price, quantity, paid, overpayment.
func Validate(price float64, quantity int, paid float64) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if paid < 0 {
		return ErrInvalidPaid
	}
	if paid > price*float64(quantity) {
		return ErrOverPayment
	}
	return nil
}

// Compute returns the derived fields for an invoice. It must be re-run
// whenever price, quantity or paid changes; a stored total that disagrees
// with its inputs is a bug, not an alternate state.
func Compute(price float64, quantity int, paid float64) (totalAmount, totalDebt float64) {
	totalAmount = price * float64(quantity)
	totalDebt = totalAmount - paid
	return totalAmount, totalDebt
}
