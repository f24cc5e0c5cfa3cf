package engine

import (
	"fmt"
	"math"

	"coastfire/internal/model"
)

// maxAge keeps ages within int range.
const maxAge = math.MaxInt32

// ValidationError identifies the offending field and the category of the
// problem. Message is safe to show to the user.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type field struct {
	name  string
	label string
	value model.FormNumber
}

// Validate turns a calculator form into inputs that Project accepts, or
// returns a *ValidationError for the first field that fails.
func Validate(form model.CalculatorForm) (model.CalculatorInputs, error) {
	required := []field{
		{"currentAge", "Current age", form.CurrentAge},
		{"currentSavings", "Current savings", form.CurrentSavings},
		{"retirementAge", "Retirement age", form.RetirementAge},
		{"desiredIncome", "Desired annual income", form.DesiredIncome},
	}
	for _, f := range required {
		if !f.value.Present {
			return model.CalculatorInputs{}, invalid(model.CodeMissingField, f.name, "%s is required", f.label)
		}
		if f.value.Invalid {
			return model.CalculatorInputs{}, invalid(model.CodeInvalidNumber, f.name, "%s must be a valid number", f.label)
		}
	}

	withdrawal, err := optional(field{"withdrawalRate", "Withdrawal rate", form.WithdrawalRate}, DefaultWithdrawalRatePct)
	if err != nil {
		return model.CalculatorInputs{}, err
	}
	returns, err := optional(field{"returnRate", "Expected return rate", form.ReturnRate}, DefaultExpectedReturnPct)
	if err != nil {
		return model.CalculatorInputs{}, err
	}

	for _, f := range []field{required[0], required[2]} {
		v := f.value.Value
		if v != math.Trunc(v) || v <= 0 || v > maxAge {
			return model.CalculatorInputs{}, invalid(model.CodeInvalidAge, f.name,
				"%s must be a positive whole number", f.label)
		}
	}
	currentAge := int(form.CurrentAge.Value)
	retirementAge := int(form.RetirementAge.Value)
	if currentAge >= retirementAge {
		return model.CalculatorInputs{}, invalid(model.CodeAgeOrder, "retirementAge",
			"Current age must be less than retirement age")
	}

	for _, f := range []field{required[1], required[3]} {
		if f.value.Value < 0 {
			return model.CalculatorInputs{}, invalid(model.CodeNegativeAmount, f.name, "%s must not be negative", f.label)
		}
	}
	if withdrawal <= 0 {
		return model.CalculatorInputs{}, invalid(model.CodeInvalidWithdrawalRate, "withdrawalRate",
			"Withdrawal rate must be greater than zero")
	}
	if returns < 0 {
		return model.CalculatorInputs{}, invalid(model.CodeNegativeReturnRate, "returnRate",
			"Expected return rate must not be negative")
	}

	return model.CalculatorInputs{
		CurrentAge:          currentAge,
		CurrentSavings:      form.CurrentSavings.Value,
		RetirementAge:       retirementAge,
		DesiredAnnualIncome: form.DesiredIncome.Value,
		WithdrawalRatePct:   withdrawal,
		ExpectedReturnPct:   returns,
	}, nil
}

func optional(f field, def float64) (float64, error) {
	if !f.value.Present {
		return def, nil
	}
	if f.value.Invalid {
		return 0, invalid(model.CodeInvalidNumber, f.name, "%s must be a valid number", f.label)
	}
	return f.value.Value, nil
}

func invalid(code, name, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Field: name, Message: fmt.Sprintf(format, args...)}
}
