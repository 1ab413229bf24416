package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                  string          `json:"id" db:"id"`
	Name                string          `json:"name" db:"name"`
	Income              decimal.Decimal `json:"income" db:"income"`
	Savings             decimal.Decimal `json:"savings" db:"savings"`
	Categories          []string        `json:"categories" db:"categories"`
	IncomeCategories    []string        `json:"income_categories" db:"income_categories"`
	OnboardingCompleted bool            `json:"onboarding_completed" db:"onboarding_completed"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at" db:"updated_at"`
}
