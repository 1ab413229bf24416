package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/daniilgb/budgetwise/internal/database"
	"github.com/daniilgb/budgetwise/internal/push"
	"github.com/daniilgb/budgetwise/internal/savings"
	"github.com/daniilgb/budgetwise/models"
)

type ingestRequest struct {
	UserID string     `json:"UserID"`
	Data   ingestData `json:"Data"`
}

type ingestData struct {
	Amount   decimal.Decimal `json:"Amount"`
	Category string          `json:"Category"`
	Notes    string          `json:"Notes"`
	Type     string          `json:"Type"`
}

// IngestTransaction accepts transactions from the external shortcut
// integration. It validates the payload, checks the user id is known, writes
// the transaction dated now, and fires a best-effort push notification. The
// notification can fail without failing the write.
func IngestTransaction(pool *pgxpool.Pool, notifier *push.Notifier, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ingestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if req.UserID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "UserID is required"})
			return
		}
		if req.Data.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
			return
		}
		txType, ok := models.NormalizeType(req.Data.Type)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be income or expense"})
			return
		}
		if !req.Data.Amount.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be greater than zero"})
			return
		}

		exists, err := database.UserExists(c.Request.Context(), pool, req.UserID)
		if err != nil {
			log.Error().Err(err).Msg("user lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify user"})
			return
		}
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown user"})
			return
		}

		transaction := &models.Transaction{
			UserID:   req.UserID,
			Amount:   req.Data.Amount,
			Category: req.Data.Category,
			Type:     txType,
			Notes:    req.Data.Notes,
			Date:     models.FlexTime{Time: time.Now()},
			Source:   models.SourceShortcut,
		}
		if err := database.CreateTransaction(c.Request.Context(), pool, transaction); err != nil {
			log.Error().Err(err).Msg("could not create transaction")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create transaction"})
			return
		}

		notifier.Broadcast(c.Request.Context(), req.UserID, push.Notification{
			Title: "Transaction added",
			Body:  fmt.Sprintf("%s: %s (%s)", transaction.Category, transaction.Amount.StringFixed(2), txType),
		})

		c.JSON(http.StatusCreated, gin.H{"success": true, "transactionId": transaction.ID})
	}
}

// CreateTransaction is the web entry form's endpoint.
func CreateTransaction(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if transaction.UserID == "" || transaction.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and category are required"})
			return
		}
		txType, ok := models.NormalizeType(transaction.Type)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
			return
		}
		transaction.Type = txType
		if transaction.Amount.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount cannot be negative"})
			return
		}
		if transaction.Date.IsZero() {
			transaction.Date = models.FlexTime{Time: time.Now()}
		}
		transaction.Source = models.SourceWeb

		if err := database.CreateTransaction(c.Request.Context(), pool, &transaction); err != nil {
			log.Error().Err(err).Msg("could not create transaction")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create transaction"})
			return
		}
		c.JSON(http.StatusCreated, transaction)
	}
}

func ListTransactions(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		transactions, err := database.GetTransactionsByUserID(c.Request.Context(), pool, userID)
		if err != nil {
			log.Error().Err(err).Msg("could not list transactions")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list transactions"})
			return
		}
		sorted := savings.SortTransactions(transactions, savings.SortMode(c.DefaultQuery("sort", string(savings.SortRecent))))
		c.JSON(http.StatusOK, sorted)
	}
}

func UpdateTransaction(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		transaction.ID = c.Param("id")

		// Updates replace the row wholesale, so they validate like create:
		// persisting an empty or unknown type would make the transaction
		// invisible to the savings math.
		if transaction.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
			return
		}
		txType, ok := models.NormalizeType(transaction.Type)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
			return
		}
		transaction.Type = txType
		if transaction.Amount.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount cannot be negative"})
			return
		}

		if err := database.UpdateTransaction(c.Request.Context(), pool, &transaction); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
				return
			}
			log.Error().Err(err).Msg("could not update transaction")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update transaction"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "transaction updated"})
	}
}

func DeleteTransaction(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := database.DeleteTransaction(c.Request.Context(), pool, id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
				return
			}
			log.Error().Err(err).Msg("could not delete transaction")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete transaction"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
	}
}
