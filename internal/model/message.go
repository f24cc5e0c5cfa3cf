package model

// Validation codes reported alongside a user-facing message when calculator
// input is rejected.
const (
	CodeMissingField          = "MISSING_FIELD"
	CodeInvalidNumber         = "INVALID_NUMBER"
	CodeInvalidAge            = "INVALID_AGE"
	CodeAgeOrder              = "AGE_ORDER"
	CodeNegativeAmount        = "NEGATIVE_AMOUNT"
	CodeInvalidWithdrawalRate = "INVALID_WITHDRAWAL_RATE"
	CodeNegativeReturnRate    = "NEGATIVE_RETURN_RATE"
	CodeOutOfRange            = "OUT_OF_RANGE"
)
