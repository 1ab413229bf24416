package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/internal/database"
	"github.com/daniilgb/budgetwise/internal/savings"
	"github.com/daniilgb/budgetwise/models"
)

// loadSnapshot fetches the user's transaction and budget snapshots the engine
// consumes. On failure it has already written the error response.
func loadSnapshot(c *gin.Context, pool *pgxpool.Pool, log zerolog.Logger) ([]models.Transaction, []models.Budget, bool) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return nil, nil, false
	}

	transactions, err := database.GetTransactionsByUserID(c.Request.Context(), pool, userID)
	if err != nil {
		log.Error().Err(err).Msg("could not load transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load transactions"})
		return nil, nil, false
	}
	budgets, err := database.GetBudgetsByUserID(c.Request.Context(), pool, userID)
	if err != nil {
		log.Error().Err(err).Msg("could not load budgets")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load budgets"})
		return nil, nil, false
	}
	return transactions, budgets, true
}

// GetSavings returns the full savings projection from the earliest tracked
// day through today.
func GetSavings(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions, budgets, ok := loadSnapshot(c, pool, log)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, savings.Calculate(transactions, budgets, time.Now()))
	}
}

func GetTodaySavings(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions, budgets, ok := loadSnapshot(c, pool, log)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, savings.Today(transactions, budgets, time.Now()))
	}
}

// GetCategoryExpenses returns expense totals grouped by category, largest
// first.
func GetCategoryExpenses(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions, _, ok := loadSnapshot(c, pool, log)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"category_expenses": savings.ExpensesByCategory(transactions)})
	}
}

// GetBudgetProgress reports current-month spend against each category budget.
func GetBudgetProgress(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions, budgets, ok := loadSnapshot(c, pool, log)
		if !ok {
			return
		}

		now := time.Now()
		spentByCategory := make(map[string]decimal.Decimal)
		for _, ct := range savings.ExpensesByCategory(savings.InMonth(transactions, now)) {
			spentByCategory[ct.Category] = ct.Amount
		}

		progress := make([]models.BudgetProgress, 0, len(budgets))
		for _, b := range budgets {
			spent, found := spentByCategory[b.Category]
			if !found {
				spent = decimal.Zero
			}
			progress = append(progress, savings.Progress(b.Category, b.MonthlyBudget, spent))
		}
		c.JSON(http.StatusOK, gin.H{"budget_progress": progress})
	}
}

// GetRangeBudget scales the user's combined monthly budget to the requested
// reporting window (daily, week, month, yearly, all).
func GetRangeBudget(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions, budgets, ok := loadSnapshot(c, pool, log)
		if !ok {
			return
		}

		monthly := decimal.Zero
		for _, b := range budgets {
			monthly = monthly.Add(b.MonthlyBudget)
		}
		rng := models.BudgetRange(c.DefaultQuery("range", string(models.RangeMonth)))
		total := savings.TotalBudgetForRange(monthly, rng, transactions, time.Now())

		c.JSON(http.StatusOK, gin.H{"range": rng, "total_budget": total})
	}
}
