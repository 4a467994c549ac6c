package projection

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/apperrors"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Numeric tags (gte, lte, gt) are evaluated against the float value of a decimal.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		a := sl.Current().Interface().(domain.ModelAssumptions)
		if a.AnnualCapex.IsPositive() && !a.DepreciationYears.IsPositive() {
			sl.ReportError(a.DepreciationYears, "depreciationYears", "DepreciationYears", "required_with_capex", "")
		}
	}, domain.ModelAssumptions{})

	return v
}

// ValidateCashFlow rejects cash-flow assumptions the engine cannot simulate.
func ValidateCashFlow(a domain.CashFlowAssumptions) error {
	return validationError(validate.Struct(a))
}

// ValidateModel rejects financial-model assumptions the engine cannot simulate.
func ValidateModel(a domain.ModelAssumptions) error {
	return validationError(validate.Struct(a))
}

func validationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s entries", field, fe.Param())
	case "required_with_capex":
		return fmt.Sprintf("%s must be positive when annual capex is set", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
