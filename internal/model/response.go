package model

type CollectEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SendResultsResponse struct {
	Message string `json:"message"`
	EmailID string `json:"emailId,omitempty"`
	Email   string `json:"email,omitempty"`
}

type CalculateResponse struct {
	Inputs CalculatorInputs `json:"inputs"`
	Result ProjectionResult `json:"result"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Email    string `json:"email"`
}

type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Field  string `json:"field,omitempty"`
}
