package accounting

import (
	"testing"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateBalanceSheet(t *testing.T) {
	d := decimal.RequireFromString

	assert.NoError(t, ValidateBalanceSheet("Jan Y1", d("1500"), d("500"), d("1000")))
	assert.NoError(t, ValidateBalanceSheet("Jan Y1", d("1500.0000001"), d("500"), d("1000")), "within tolerance")

	err := ValidateBalanceSheet("Feb Y1", d("1500.01"), d("500"), d("1000"))
	assert.ErrorIs(t, err, apperrors.ErrInvariant)
	assert.Contains(t, err.Error(), "Feb Y1")
}

func TestValidateCashBridge(t *testing.T) {
	d := decimal.RequireFromString

	assert.NoError(t, ValidateCashBridge("Mar", d("100"), d("50"), d("30"), d("20"), d("120")))
	assert.ErrorIs(t, ValidateCashBridge("Mar", d("100"), d("50"), d("30"), d("25"), d("125")), apperrors.ErrInvariant)
	assert.ErrorIs(t, ValidateCashBridge("Mar", d("100"), d("50"), d("30"), d("20"), d("119")), apperrors.ErrInvariant)
}

func TestPercent(t *testing.T) {
	assert.True(t, Percent(decimal.NewFromInt(20)).Equal(decimal.RequireFromString("0.2")))
	assert.True(t, Percent(decimal.RequireFromString("2.5")).Equal(decimal.RequireFromString("0.025")))
}
