package utils

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/internal/database"
	"github.com/daniilgb/budgetwise/models"
)

var demoCategories = []string{"F&B", "Transport", "Groceries", "Entertainment", "Health"}

// SeedDemoData fills the database with fake users, category budgets, and a
// transaction history spread over the past two months. It returns the IDs of
// the users it created. Meant for local development and demos only.
func SeedDemoData(ctx context.Context, pool *pgxpool.Pool, numUsers, transactionsPerUser int) ([]string, error) {
	userIDs := make([]string, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user := &models.User{
			Name:                gofakeit.Name(),
			Income:              decimal.NewFromInt(int64(gofakeit.Number(2000, 8000))),
			Savings:             decimal.NewFromInt(int64(gofakeit.Number(500, 5000))),
			Categories:          demoCategories,
			IncomeCategories:    []string{"Salary", models.CategoryTransfer},
			OnboardingCompleted: true,
		}
		if err := database.CreateUser(ctx, pool, user); err != nil {
			return userIDs, fmt.Errorf("seeding user: %w", err)
		}
		userIDs = append(userIDs, user.ID)

		for _, category := range demoCategories {
			budget := &models.Budget{
				UserID:        user.ID,
				Category:      category,
				MonthlyBudget: decimal.NewFromInt(int64(gofakeit.Number(100, 600))),
				Type:          models.TypeExpense,
			}
			if err := database.UpsertBudget(ctx, pool, budget); err != nil {
				return userIDs, fmt.Errorf("seeding budget: %w", err)
			}
		}

		for j := 0; j < transactionsPerUser; j++ {
			category := demoCategories[rand.Intn(len(demoCategories))]
			txType := models.TypeExpense
			if j%7 == 0 {
				category = "Salary"
				txType = models.TypeIncome
			}
			transaction := &models.Transaction{
				UserID:   user.ID,
				Amount:   decimal.NewFromFloat(gofakeit.Price(2, 150)).Round(2),
				Category: category,
				Type:     txType,
				Date:     models.FlexTime{Time: time.Now().AddDate(0, 0, -rand.Intn(60))},
				Notes:    gofakeit.Sentence(4),
				Source:   models.SourceWeb,
			}
			if err := database.CreateTransaction(ctx, pool, transaction); err != nil {
				return userIDs, fmt.Errorf("seeding transaction: %w", err)
			}
		}
	}
	return userIDs, nil
}
