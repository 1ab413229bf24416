package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/daniilgb/budgetwise/internal/handlers"
	"github.com/daniilgb/budgetwise/internal/push"
)

// Setup builds the gin engine with all routes and middleware attached.
func Setup(pool *pgxpool.Pool, notifier *push.Notifier, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(corsMiddleware())

	// Shortcut-integration surface.
	r.POST("/transactions", handlers.IngestTransaction(pool, notifier, log))
	r.POST("/push-subscriptions", handlers.RegisterPushSubscription(pool, log))
	r.GET("/push-subscriptions", handlers.ListPushSubscriptions(pool, log))
	r.DELETE("/push-subscriptions", handlers.RemovePushSubscription(pool, log))

	// Web client API.
	api := r.Group("/api")
	{
		api.POST("/users", handlers.CreateUser(pool, log))
		api.GET("/users/:id", handlers.GetUser(pool, log))
		api.PUT("/users/:id", handlers.UpdateUser(pool, log))

		api.POST("/transactions", handlers.CreateTransaction(pool, log))
		api.GET("/transactions", handlers.ListTransactions(pool, log))
		api.PUT("/transactions/:id", handlers.UpdateTransaction(pool, log))
		api.DELETE("/transactions/:id", handlers.DeleteTransaction(pool, log))

		api.POST("/budgets", handlers.SetBudget(pool, log))
		api.GET("/budgets", handlers.ListBudgets(pool, log))
		api.GET("/budgets/:category", handlers.GetBudget(pool, log))
		api.DELETE("/budgets/:category", handlers.DeleteBudget(pool, log))

		api.GET("/dashboard/savings", handlers.GetSavings(pool, log))
		api.GET("/dashboard/savings/today", handlers.GetTodaySavings(pool, log))
		api.GET("/dashboard/category_expenses", handlers.GetCategoryExpenses(pool, log))
		api.GET("/dashboard/budget_progress", handlers.GetBudgetProgress(pool, log))
		api.GET("/dashboard/range_budget", handlers.GetRangeBudget(pool, log))
	}

	return r
}

// corsMiddleware accepts any origin. The PWA is served from a different host
// than the API and the shortcut integration has no origin at all.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	}
}
