package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		quantity int
		paid     float64
		want     error
	}{
		{"ok", 1000, 2, 1500, nil},
		{"ok zero price", 0, 1, 0, nil},
		{"ok fully paid", 500, 4, 2000, nil},
		{"negative price", -1, 1, 0, ErrInvalidPrice},
		{"zero quantity", 100, 0, 0, ErrInvalidQuantity},
		{"negative quantity", 100, -3, 0, ErrInvalidQuantity},
		{"negative paid", 100, 1, -1, ErrInvalidPaid},
		{"overpayment", 100, 2, 201, ErrOverPayment},
		{"paid equals total is fine", 100, 2, 200, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.price, tc.quantity, tc.paid)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestCompute(t *testing.T) {
	cases := []struct {
		name       string
		price      float64
		quantity   int
		paid       float64
		wantAmount float64
		wantDebt   float64
	}{
		{"partial payment", 1000, 2, 1500, 2000, 500},
		{"fully paid", 250, 4, 1000, 1000, 0},
		{"nothing paid", 99.5, 3, 0, 298.5, 298.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount, debt := Compute(tc.price, tc.quantity, tc.paid)
			assert.Equal(t, tc.wantAmount, amount)
			assert.Equal(t, tc.wantDebt, debt)
		})
	}
}

func TestRowErrorMessage(t *testing.T) {
	err := RowError{Row: 4, Err: ErrInvalidQuantity}
	assert.Equal(t, "row 4: quantity must be greater than zero", err.Error())
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}
