package engine

import (
	"math"

	"coastfire/internal/model"
)

// Calculator form defaults, matching the preset values of the web form.
const (
	DefaultWithdrawalRatePct = 4
	DefaultExpectedReturnPct = 7
)

// Calculate validates a calculator form and projects it.
func Calculate(form model.CalculatorForm) (model.CalculatorInputs, model.ProjectionResult, error) {
	in, err := Validate(form)
	if err != nil {
		return model.CalculatorInputs{}, model.ProjectionResult{}, err
	}
	res := Project(in)
	if err := checkFinite(res); err != nil {
		return model.CalculatorInputs{}, model.ProjectionResult{}, err
	}
	return in, res, nil
}

// checkFinite rejects inputs the validator accepts but whose projection
// overflows float64. The offending input is named: desiredIncome for an
// unbounded FIRE number, returnRate for an unbounded growth factor.
func checkFinite(res model.ProjectionResult) error {
	if !finite(res.FireNumber) || !finite(res.MonthlyIncome) {
		return invalid(model.CodeOutOfRange, "desiredIncome",
			"Desired annual income is too large to project")
	}
	for _, v := range []float64{res.CoastFireNumber, res.FutureValue, res.AdditionalNeeded} {
		if !finite(v) {
			return invalid(model.CodeOutOfRange, "returnRate",
				"Expected return rate is too large to project over this many years")
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Project computes the Coast FIRE projection for validated inputs. It is pure:
// the same inputs always produce the same result.
func Project(in model.CalculatorInputs) model.ProjectionResult {
	years := in.RetirementAge - in.CurrentAge

	// Capital needed at retirement to fund the income at the withdrawal rate.
	fireNumber := in.DesiredAnnualIncome / (in.WithdrawalRatePct / 100)

	// futureValue and coastFireNumber must share this factor.
	growth := math.Pow(1+in.ExpectedReturnPct/100, float64(years))

	futureValue := in.CurrentSavings * growth
	coastFireNumber := fireNumber / growth

	return model.ProjectionResult{
		FireNumber:        fireNumber,
		CoastFireNumber:   coastFireNumber,
		CurrentSavings:    in.CurrentSavings,
		FutureValue:       futureValue,
		AdditionalNeeded:  math.Max(0, coastFireNumber-in.CurrentSavings),
		IsCoastFire:       in.CurrentSavings >= coastFireNumber,
		YearsToRetirement: years,
		MonthlyIncome:     in.DesiredAnnualIncome / 12,
	}
}
