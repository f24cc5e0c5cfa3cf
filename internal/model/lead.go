package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SourceHomepage      = "homepage"
	SourceCalculator    = "calculator"
	CalculatorCoastFire = "coast-fire"
)

type EmailLead struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email             string         `gorm:"column:email;not null;uniqueIndex:idx_email_leads_email" json:"email"`
	Source            string         `gorm:"column:source;not null" json:"source"`
	CalculatorType    *string        `gorm:"column:calculator_type" json:"calculator_type"`
	CalculatorResults datatypes.JSON `gorm:"column:calculator_results" json:"calculator_results"`
	CreatedAt         time.Time      `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (EmailLead) TableName() string { return "email_leads" }
