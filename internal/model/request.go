package model

import json "github.com/goccy/go-json"

type CollectEmailRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

// SendResultsRequest keeps the calculator payloads raw: they are persisted as
// submitted and only decoded for rendering the email.
type SendResultsRequest struct {
	Email             string          `json:"email"`
	CalculatorResults json.RawMessage `json:"calculatorResults"`
	UserInputs        json.RawMessage `json:"userInputs"`
}

// CalculatorForm is the calculator form as posted by the browser. Every value
// may arrive as a JSON number or as the raw text of an input field.
type CalculatorForm struct {
	CurrentAge     FormNumber `json:"currentAge"`
	CurrentSavings FormNumber `json:"currentSavings"`
	RetirementAge  FormNumber `json:"retirementAge"`
	DesiredIncome  FormNumber `json:"desiredIncome"`
	WithdrawalRate FormNumber `json:"withdrawalRate"`
	ReturnRate     FormNumber `json:"returnRate"`
}
