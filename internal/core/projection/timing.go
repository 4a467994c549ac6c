package projection

import "github.com/shopspring/decimal"

const (
	daysPerMonth         = 30
	maxOutstandingMonths = 12
)

// OpeningPolicy decides the balance a receivable or payable ledger starts from.
type OpeningPolicy int

const (
	// OpenSteadyState starts month 1 as if the business had already been running
	// at month 1's accrual rate, so constant inputs give constant cash flow.
	OpenSteadyState OpeningPolicy = iota
	// OpenFromSeed starts from the Year-0 balance sheet, which carries no
	// receivables or payables.
	OpenFromSeed
)

// TimingStep is one month of a receivable or payable ledger.
type TimingStep struct {
	Beginning decimal.Decimal
	Accrual   decimal.Decimal
	Ending    decimal.Decimal
	Cash      decimal.Decimal
}

// OutstandingRatio converts days outstanding into months of accrual held as a balance,
// capped at one year.
func OutstandingRatio(days decimal.Decimal) decimal.Decimal {
	if days.Sign() <= 0 {
		return decimal.Zero
	}
	ratio := days.Div(decimal.NewFromInt(daysPerMonth))
	return decimal.Min(ratio, decimal.NewFromInt(maxOutstandingMonths))
}

// ConvertTiming folds a sequence of accrual amounts into the cash actually
// collected (or paid) each month, given days outstanding.
func ConvertTiming(days decimal.Decimal, accruals []decimal.Decimal, policy OpeningPolicy) []TimingStep {
	ratio := OutstandingRatio(days)
	steps := make([]TimingStep, len(accruals))

	beginning := decimal.Zero
	if policy == OpenSteadyState && len(accruals) > 0 {
		beginning = ratio.Mul(accruals[0])
	}

	for i, accrual := range accruals {
		steps[i] = settle(beginning, accrual, ratio)
		beginning = steps[i].Ending
	}
	return steps
}

// settle computes one month. Cash never goes negative; when the target balance
// would require un-collecting cash, the balance keeps what was not collected.
func settle(beginning, accrual, ratio decimal.Decimal) TimingStep {
	ending := ratio.Mul(accrual)
	cash := beginning.Add(accrual).Sub(ending)
	if cash.IsNegative() {
		cash = decimal.Zero
		ending = beginning.Add(accrual)
	}
	return TimingStep{
		Beginning: beginning,
		Accrual:   accrual,
		Ending:    ending,
		Cash:      cash,
	}
}
