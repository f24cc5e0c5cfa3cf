package model

// CalculatorInputs are the validated inputs of one Coast FIRE calculation.
// Percentages are whole-number percents (4 means 4%).
type CalculatorInputs struct {
	CurrentAge          int     `json:"currentAge"`
	CurrentSavings      float64 `json:"currentSavings"`
	RetirementAge       int     `json:"retirementAge"`
	DesiredAnnualIncome float64 `json:"desiredIncome"`
	WithdrawalRatePct   float64 `json:"withdrawalRate"`
	ExpectedReturnPct   float64 `json:"returnRate"`
}

type ProjectionResult struct {
	FireNumber        float64 `json:"fireNumber"`
	CoastFireNumber   float64 `json:"coastFireNumber"`
	CurrentSavings    float64 `json:"currentSavings"`
	FutureValue       float64 `json:"futureValue"`
	AdditionalNeeded  float64 `json:"additionalNeeded"`
	IsCoastFire       bool    `json:"isCoastFire"`
	YearsToRetirement int     `json:"yearsToRetirement"`
	MonthlyIncome     float64 `json:"monthlyIncome"`
}
