package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/daniilgb/budgetwise/internal/database"
	"github.com/daniilgb/budgetwise/models"
)

// SetBudget creates or replaces the monthly budget for one category. The
// category is the key, so posting twice just overwrites.
func SetBudget(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var budget models.Budget
		if err := c.ShouldBindJSON(&budget); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if budget.UserID == "" || budget.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and category are required"})
			return
		}
		budgetType, ok := models.NormalizeType(budget.Type)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
			return
		}
		budget.Type = budgetType
		if budget.MonthlyBudget.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "monthly_budget cannot be negative"})
			return
		}

		if err := database.UpsertBudget(c.Request.Context(), pool, &budget); err != nil {
			log.Error().Err(err).Msg("could not save budget")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save budget"})
			return
		}
		c.JSON(http.StatusCreated, budget)
	}
}

func GetBudget(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		category := c.Param("category")
		if userID == "" || category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and category are required"})
			return
		}

		budget, err := database.GetBudgetByCategory(c.Request.Context(), pool, userID, category)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "budget not found"})
				return
			}
			log.Error().Err(err).Msg("could not fetch budget")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch budget"})
			return
		}
		c.JSON(http.StatusOK, budget)
	}
}

func ListBudgets(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		budgets, err := database.GetBudgetsByUserID(c.Request.Context(), pool, userID)
		if err != nil {
			log.Error().Err(err).Msg("could not list budgets")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list budgets"})
			return
		}
		c.JSON(http.StatusOK, budgets)
	}
}

func DeleteBudget(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		category := c.Param("category")
		if userID == "" || category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and category are required"})
			return
		}

		if err := database.DeleteBudget(c.Request.Context(), pool, userID, category); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "budget not found"})
				return
			}
			log.Error().Err(err).Msg("could not delete budget")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete budget"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "budget deleted"})
	}
}
