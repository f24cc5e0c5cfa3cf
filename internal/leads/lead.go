package leads

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"coastfire/internal/model"
)

// NewSignupLead builds the lead for a homepage signup.
func NewSignupLead(email, source string) *model.EmailLead {
	if source == "" {
		source = model.SourceHomepage
	}
	return &model.EmailLead{
		ID:     uuid.New(),
		Email:  email,
		Source: source,
	}
}

// NewCalculatorLead builds the lead for a results request. The stored
// calculator_results object is the submitted results with the user inputs
// merged over them.
func NewCalculatorLead(email string, results, inputs json.RawMessage) (*model.EmailLead, error) {
	merged := map[string]any{}
	for _, raw := range []json.RawMessage{results, inputs} {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("decode calculator data: %w", err)
		}
		for k, v := range obj {
			merged[k] = v
		}
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encode calculator data: %w", err)
	}

	calculatorType := model.CalculatorCoastFire
	return &model.EmailLead{
		ID:                uuid.New(),
		Email:             email,
		Source:            model.SourceCalculator,
		CalculatorType:    &calculatorType,
		CalculatorResults: datatypes.JSON(data),
	}, nil
}
