package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Budget struct {
	UserID        string          `json:"user_id" db:"user_id"`
	Category      string          `json:"category" db:"category"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget" db:"monthly_budget"`
	Type          string          `json:"type" db:"type"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
