package accounting

import (
	"fmt"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest difference still treated as balanced.
// Projection arithmetic is exact decimal addition, so anything above this
// indicates a leak rather than rounding.
var BalanceTolerance = decimal.New(1, -6)

// Balanced reports whether two amounts agree within BalanceTolerance.
func Balanced(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(BalanceTolerance)
}

// ValidateBalanceSheet checks the accounting identity assets = liabilities + equity.
func ValidateBalanceSheet(label string, assets, liabilities, equity decimal.Decimal) error {
	if !Balanced(assets, liabilities.Add(equity)) {
		return fmt.Errorf("%w: %s: assets %s != liabilities %s + equity %s (diff %s)",
			apperrors.ErrInvariant, label, assets, liabilities, equity, assets.Sub(liabilities.Add(equity)))
	}
	return nil
}

// ValidateCashBridge checks that a closing balance equals the opening balance plus net cash flow,
// and that net cash flow equals inflow minus outflow.
func ValidateCashBridge(label string, opening, inflow, outflow, net, closing decimal.Decimal) error {
	if !Balanced(net, inflow.Sub(outflow)) {
		return fmt.Errorf("%w: %s: net cash flow %s != inflow %s - outflow %s",
			apperrors.ErrInvariant, label, net, inflow, outflow)
	}
	if !Balanced(closing, opening.Add(net)) {
		return fmt.Errorf("%w: %s: closing %s != opening %s + net %s",
			apperrors.ErrInvariant, label, closing, opening, net)
	}
	return nil
}

// Percent converts a whole-number percentage (20 for 20%) into a ratio (0.2).
func Percent(p decimal.Decimal) decimal.Decimal {
	return p.Shift(-2)
}
