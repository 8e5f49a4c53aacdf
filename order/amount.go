package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountPrecision = errors.New("amount has more fractional digits than the asset supports")
	ErrNegativeAmount  = errors.New("amount must not be negative")
)

// ToBaseUnits converts a user-facing decimal string into the asset's integer
// base-unit representation. The scaling is exact; inputs carrying more
// fractional digits than the asset supports are rejected rather than
// truncated.
func ToBaseUnits(amount string, decimals uint8) (string, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return "", fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if d.Sign() < 0 {
		return "", ErrNegativeAmount
	}

	shifted := d.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return "", ErrAmountPrecision
	}

	return shifted.String(), nil
}

// FromBaseUnits is the inverse of ToBaseUnits.
func FromBaseUnits(baseUnits string, decimals uint8) (string, error) {
	d, err := decimal.NewFromString(baseUnits)
	if err != nil {
		return "", fmt.Errorf("invalid base-unit amount %q: %w", baseUnits, err)
	}
	if !d.IsInteger() {
		return "", fmt.Errorf("base-unit amount %q is not an integer", baseUnits)
	}
	if d.Sign() < 0 {
		return "", ErrNegativeAmount
	}

	return d.Shift(-int32(decimals)).String(), nil
}
