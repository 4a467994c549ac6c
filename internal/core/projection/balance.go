package projection

import (
	"fmt"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// seedBalanceSheet is the Year-0 snapshot: starting cash funded entirely by paid-in capital.
func seedBalanceSheet(a domain.ModelAssumptions) (domain.ModelSeed, error) {
	seed := domain.ModelSeed{
		Cash:             a.StartingCash,
		Receivables:      decimal.Zero,
		Payables:         decimal.Zero,
		NetFixedAssets:   decimal.Zero,
		TotalAssets:      a.StartingCash,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      a.StartingCash,
	}
	if err := accounting.ValidateBalanceSheet("seed", seed.TotalAssets, seed.TotalLiabilities, seed.TotalEquity); err != nil {
		return domain.ModelSeed{}, err
	}
	return seed, nil
}

// accumulateModel turns the accrual fold into full statement rows: receivables and
// payables through the timing converter, cash through the indirect method, and a
// balance sheet checked against the accounting identity on every month.
// Both ledgers open from the seed's empty balances, so with DSO or DPO set month 1
// carries the working-capital build-up that the cash-flow model's steady-state
// opening avoids.
func accumulateModel(a domain.ModelAssumptions, seed domain.ModelSeed, accruals []modelAccrual) ([]domain.ModelMonth, error) {
	revenues := make([]decimal.Decimal, len(accruals))
	purchases := make([]decimal.Decimal, len(accruals))
	for i, m := range accruals {
		revenues[i] = m.Revenue
		purchases[i] = m.Purchases()
	}
	receivables := ConvertTiming(a.DSO, revenues, OpenFromSeed)
	payables := ConvertTiming(a.DPO, purchases, OpenFromSeed)

	months := make([]domain.ModelMonth, len(accruals))
	cash := seed.Cash
	retained := decimal.Zero

	for i, m := range accruals {
		ar, ap := receivables[i], payables[i]

		deltaAR := ar.Ending.Sub(ar.Beginning)
		deltaAP := ap.Ending.Sub(ap.Beginning)
		operating := m.NetProfit.Add(m.Depreciation).Sub(deltaAR).Add(deltaAP)
		investing := m.Capex.Neg()
		net := operating.Add(investing)

		inflow := ar.Cash
		outflow := ap.Cash.Add(m.Tax).Add(m.Capex)

		opening := cash
		cash = opening.Add(net)
		retained = retained.Add(m.NetProfit)

		netFixed := m.CumulativeCapex.Sub(m.AccumulatedDepreciation)
		assets := cash.Add(ar.Ending).Add(netFixed)
		liabilities := ap.Ending
		equity := a.StartingCash.Add(retained)

		label := fmt.Sprintf("month %d", m.Month)
		if err := accounting.ValidateCashBridge(label, opening, inflow, outflow, net, cash); err != nil {
			return nil, err
		}
		if err := accounting.ValidateBalanceSheet(label, assets, liabilities, equity); err != nil {
			return nil, err
		}

		months[i] = domain.ModelMonth{
			Month:             m.Month,
			Label:             MonthLabel(a.StartMonth, m.Month, true),
			Revenue:           m.Revenue,
			COGS:              m.COGS,
			GrossProfit:       m.GrossProfit,
			FixedOpex:         m.FixedOpex,
			VariableOpex:      m.VariableOpex,
			EBITDA:            m.EBITDA,
			Depreciation:      m.Depreciation,
			PreTaxProfit:      m.PreTaxProfit,
			Tax:               m.Tax,
			NetProfit:         m.NetProfit,
			Capex:             m.Capex,
			OperatingCashFlow: operating,
			InvestingCashFlow: investing,
			CashPosition: domain.CashPosition{
				OpeningBalance: opening,
				CashInflow:     inflow,
				CashOutflow:    outflow,
				NetCashFlow:    net,
				ClosingBalance: cash,
				Receivables:    ar.Ending,
				Payables:       ap.Ending,
			},
			CumulativeCapex:         m.CumulativeCapex,
			AccumulatedDepreciation: m.AccumulatedDepreciation,
			NetFixedAssets:          netFixed,
			RetainedEarnings:        retained,
			TotalAssets:             assets,
			TotalLiabilities:        liabilities,
			TotalEquity:             equity,
		}
	}
	return months, nil
}

// accumulateCashFlow runs the cash-timing model: both ledgers start in steady state
// and the running cash balance chains month to month.
func accumulateCashFlow(a domain.CashFlowAssumptions, accruals []cashFlowAccrual) ([]domain.CashFlowMonth, error) {
	revenues := make([]decimal.Decimal, len(accruals))
	expenses := make([]decimal.Decimal, len(accruals))
	for i, m := range accruals {
		revenues[i] = m.Revenue
		expenses[i] = m.Expenses
	}
	receivables := ConvertTiming(a.DSO, revenues, OpenSteadyState)
	payables := ConvertTiming(a.DPO, expenses, OpenSteadyState)

	months := make([]domain.CashFlowMonth, len(accruals))
	balance := a.StartingBalance

	for i, m := range accruals {
		inflow := receivables[i].Cash
		outflow := payables[i].Cash
		net := inflow.Sub(outflow)
		opening := balance
		balance = opening.Add(net)

		if err := accounting.ValidateCashBridge(fmt.Sprintf("month %d", m.Month), opening, inflow, outflow, net, balance); err != nil {
			return nil, err
		}

		months[i] = domain.CashFlowMonth{
			Month:            m.Month,
			Label:            MonthLabel(a.StartMonth, m.Month, false),
			RecurringRevenue: m.Recurring,
			OneTimeIncome:    m.OneTime,
			TotalRevenue:     m.Revenue,
			FixedCosts:       m.Fixed,
			VariableCosts:    m.Variable,
			TotalExpenses:    m.Expenses,
			NetProfit:        m.Revenue.Sub(m.Expenses),
			CashPosition: domain.CashPosition{
				OpeningBalance: opening,
				CashInflow:     inflow,
				CashOutflow:    outflow,
				NetCashFlow:    net,
				ClosingBalance: balance,
				Receivables:    receivables[i].Ending,
				Payables:       payables[i].Ending,
			},
		}
	}
	return months, nil
}
