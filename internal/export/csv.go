// Package export renders finished projections as delimited text tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	// ContentType is the MIME type of the exported table.
	ContentType = "text/csv; charset=utf-8"

	DefaultTitle = "Startup Finance Tools"

	cashFlowModelName       = "12-Month Cash Flow Projection"
	financialModelModelName = "36-Month Financial Model"
)

var cashColumns = []string{
	"Month", "Label", "Opening Balance", "Cash Inflow", "Cash Outflow",
	"Net Cash Flow", "Closing Balance", "Receivables", "Payables",
}

// CSVExporter writes projections as a header block followed by one row per month.
type CSVExporter struct {
	title string
	now   func() time.Time
}

// CSVExporterOption configures a CSVExporter.
type CSVExporterOption func(*CSVExporter)

// WithTitle sets the title written on the first line of every export.
func WithTitle(title string) CSVExporterOption {
	return func(e *CSVExporter) {
		if title != "" {
			e.title = title
		}
	}
}

// WithClock overrides the generation timestamp source.
func WithClock(now func() time.Time) CSVExporterOption {
	return func(e *CSVExporter) {
		e.now = now
	}
}

// NewCSVExporter creates an exporter with the given options.
func NewCSVExporter(options ...CSVExporterOption) *CSVExporter {
	e := &CSVExporter{
		title: DefaultTitle,
		now:   time.Now,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// FileName suggests an attachment name for an export of the given kind.
func (e *CSVExporter) FileName(kind domain.ScenarioKind) string {
	return fmt.Sprintf("%s-%s.csv", kind, e.now().UTC().Format("20060102"))
}

// WriteCashFlow writes the 12-month cash-timing projection.
func (e *CSVExporter) WriteCashFlow(w io.Writer, p *domain.CashFlowProjection) error {
	cw := csv.NewWriter(w)
	a := p.Assumptions

	records := e.headerBlock(cashFlowModelName)
	records = append(records,
		[]string{"Monthly Revenue", amount(a.MonthlyRevenue)},
		[]string{"Fixed Costs", amount(a.FixedCosts)},
		[]string{"Variable Cost %", amount(a.VariableCostPercent)},
		[]string{"Starting Balance", amount(a.StartingBalance)},
		[]string{"DSO (days)", amount(a.DSO)},
		[]string{"DPO (days)", amount(a.DPO)},
	)
	records = append(records, summaryBlock(p.Summary)...)
	records = append(records, []string{})

	header := append(append([]string{}, cashColumns...), "Total Revenue", "Total Expenses", "Net Profit")
	records = append(records, header)
	for _, m := range p.Months {
		row := cashRow(m.Month, m.Label, m.CashPosition)
		row = append(row, amount(m.TotalRevenue), amount(m.TotalExpenses), amount(m.NetProfit))
		records = append(records, row)
	}

	return writeAll(cw, records)
}

// WriteFinancialModel writes the 36-month integrated model.
func (e *CSVExporter) WriteFinancialModel(w io.Writer, fm *domain.FinancialModel) error {
	cw := csv.NewWriter(w)
	a := fm.Assumptions

	records := e.headerBlock(financialModelModelName)
	records = append(records,
		[]string{"Starting Revenue", amount(a.StartingRevenue)},
		[]string{"Monthly Growth %", amount(a.GrowthRatePercent)},
		[]string{"COGS %", amount(a.COGSPercent)},
		[]string{"Fixed Opex", amount(a.FixedOpex)},
		[]string{"Variable Opex %", amount(a.VariableOpexPercent)},
		[]string{"Starting Cash", amount(a.StartingCash)},
		[]string{"DSO (days)", amount(a.DSO)},
		[]string{"DPO (days)", amount(a.DPO)},
		[]string{"Tax Rate %", amount(a.TaxRatePercent)},
		[]string{"Annual Capex", amount(a.AnnualCapex)},
		[]string{"Depreciation Years", amount(a.DepreciationYears)},
	)
	records = append(records, summaryBlock(fm.Summary)...)
	records = append(records, []string{})

	header := append(append([]string{}, cashColumns...),
		"Revenue", "EBITDA", "Net Profit", "Operating Cash Flow", "Investing Cash Flow",
		"Total Assets", "Total Liabilities", "Total Equity")
	records = append(records, header)

	seed := make([]string, len(header))
	seed[0], seed[1] = "0", "Opening"
	seed[6], seed[7], seed[8] = amount(fm.Seed.Cash), amount(fm.Seed.Receivables), amount(fm.Seed.Payables)
	seed[14], seed[15], seed[16] = amount(fm.Seed.TotalAssets), amount(fm.Seed.TotalLiabilities), amount(fm.Seed.TotalEquity)
	records = append(records, seed)

	for _, m := range fm.Months {
		row := cashRow(m.Month, m.Label, m.CashPosition)
		row = append(row,
			amount(m.Revenue), amount(m.EBITDA), amount(m.NetProfit),
			amount(m.OperatingCashFlow), amount(m.InvestingCashFlow),
			amount(m.TotalAssets), amount(m.TotalLiabilities), amount(m.TotalEquity))
		records = append(records, row)
	}

	records = append(records, []string{}, []string{
		"Year", "Revenue", "Gross Profit", "EBITDA", "Net Profit", "Net Cash Flow",
		"Closing Cash", "Total Assets", "Gross Margin %", "Net Margin %",
	})
	for _, y := range fm.Years {
		records = append(records, []string{
			strconv.Itoa(y.Year), amount(y.Revenue), amount(y.GrossProfit), amount(y.EBITDA),
			amount(y.NetProfit), amount(y.NetCashFlow), amount(y.ClosingCash), amount(y.TotalAssets),
			amount(y.GrossMarginPercent), amount(y.NetMarginPercent),
		})
	}

	return writeAll(cw, records)
}

func (e *CSVExporter) headerBlock(model string) [][]string {
	return [][]string{
		{e.title},
		{"Model", model},
		{"Generated", e.now().UTC().Format(time.RFC3339)},
		{},
	}
}

func summaryBlock(s domain.ProjectionSummary) [][]string {
	return [][]string{
		{},
		{"Peak Balance", amount(s.PeakBalance)},
		{"Trough Balance", amount(s.TroughBalance)},
		{"Ending Balance", amount(s.EndingBalance)},
		{"Negative Cash Flow Months", strconv.Itoa(s.NegativeFlowMonths)},
		{"Negative Balance Months", strconv.Itoa(s.NegativeBalanceMonths)},
		{"Cash Conversion Cycle (days)", amount(s.CashConversionCycleDays)},
		{"Working Capital Tied Up", amount(s.WorkingCapitalTiedUp)},
	}
}

func cashRow(month int, label string, c domain.CashPosition) []string {
	return []string{
		strconv.Itoa(month), label,
		amount(c.OpeningBalance), amount(c.CashInflow), amount(c.CashOutflow),
		amount(c.NetCashFlow), amount(c.ClosingBalance), amount(c.Receivables), amount(c.Payables),
	}
}

func amount(d decimal.Decimal) string {
	return utils.FormatAmount(d)
}

func writeAll(cw *csv.Writer, records [][]string) error {
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
