package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/apperrors"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cashFlowYAML = `
monthlyRevenue: 500000
fixedCosts: 400000
variableCostPercent: 20
startingBalance: 3000000
dso: 30
dpo: 15
oneTimeIncome: [0, 250000.5]
startMonth: 3
`

const modelJSON = `{
  "startingRevenue": 100000,
  "cogsPercent": 40,
  "fixedOpex": 30000,
  "variableOpexPercent": 10,
  "startingCash": 1000000,
  "taxRatePercent": 20,
  "annualCapex": 120000,
  "depreciationYears": 5
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the root command with every output flag set, since cobra keeps flag values
// between executions.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLoadCashFlowFile(t *testing.T) {
	a, err := loadCashFlowFile(writeFile(t, "cf.yaml", cashFlowYAML))
	require.NoError(t, err)

	assert.True(t, a.MonthlyRevenue.Equal(decimal.NewFromInt(500000)))
	assert.True(t, a.DPO.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 3, a.StartMonth)
	require.Len(t, a.OneTimeIncome, domain.CashFlowMonths)
	assert.True(t, a.OneTimeIncome[1].Equal(decimal.RequireFromString("250000.5")))
	assert.True(t, a.OneTimeIncome[11].IsZero())
}

func TestLoadCashFlowFile_Errors(t *testing.T) {
	_, err := loadCashFlowFile(writeFile(t, "long.yaml", "oneTimeIncome: [1,2,3,4,5,6,7,8,9,10,11,12,13]"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = loadCashFlowFile(writeFile(t, "typo.yaml", "monthlyRevenu: 10"))
	assert.ErrorIs(t, err, apperrors.ErrValidation, "unknown keys are rejected")

	_, err = loadCashFlowFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadModelFile_AcceptsJSON(t *testing.T) {
	a, err := loadModelFile(writeFile(t, "model.json", modelJSON))
	require.NoError(t, err)

	assert.True(t, a.StartingRevenue.Equal(decimal.NewFromInt(100000)))
	assert.True(t, a.DepreciationYears.Equal(decimal.NewFromInt(5)))
	assert.True(t, a.GrowthRatePercent.IsZero())
}

func TestCashFlowCommand_CSV(t *testing.T) {
	path := writeFile(t, "cf.yaml", cashFlowYAML)

	out, err := run(t, "cashflow", "--file", path, "--format", "csv", "--out", "", "--title", "CLI Test")
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewBufferString(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"CLI Test"}, records[0])
	assert.Contains(t, out, "Mar")
}

func TestModelCommand_JSONToFile(t *testing.T) {
	path := writeFile(t, "model.json", modelJSON)
	target := filepath.Join(t.TempDir(), "model-out.json")

	_, err := run(t, "model", "--file", path, "--format", "json", "--out", target, "--title", "x")
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var resp struct {
		Months []json.RawMessage `json:"months"`
		Years  []json.RawMessage `json:"years"`
	}
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Len(t, resp.Months, domain.ModelMonths)
	assert.Len(t, resp.Years, 3)
}

func TestModelCommand_InvalidInputLeavesNoFile(t *testing.T) {
	path := writeFile(t, "bad.yaml", "annualCapex: 1000\n")
	dir := t.TempDir()
	target := filepath.Join(dir, "out.csv")

	_, err := run(t, "model", "--file", path, "--format", "csv", "--out", target, "--title", "x")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestCommand_UnknownFormat(t *testing.T) {
	path := writeFile(t, "cf.yaml", cashFlowYAML)
	_, err := run(t, "cashflow", "--file", path, "--format", "xlsx", "--out", "", "--title", "x")
	assert.ErrorContains(t, err, "unknown format")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sftctl dev\n", out)
}
