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

type subscribeRequest struct {
	UserID      string                  `json:"user_id"`
	Endpoint    string                  `json:"endpoint"`
	Keys        models.SubscriptionKeys `json:"keys"`
	IsIOSSafari bool                    `json:"is_ios_safari"`
}

// RegisterPushSubscription upserts a device endpoint keyed by its sanitized
// endpoint string. Registering the same endpoint again refreshes it.
func RegisterPushSubscription(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.UserID == "" || req.Endpoint == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and endpoint are required"})
			return
		}
		if req.Keys.Auth == "" || req.Keys.P256dh == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "subscription keys are required"})
			return
		}

		sub := &models.PushSubscription{
			UserID:      req.UserID,
			Endpoint:    req.Endpoint,
			Keys:        req.Keys,
			IsIOSSafari: req.IsIOSSafari,
			UserAgent:   c.Request.UserAgent(),
		}
		if err := database.UpsertPushSubscription(c.Request.Context(), pool, sub); err != nil {
			log.Error().Err(err).Msg("could not register push subscription")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register push subscription"})
			return
		}
		c.JSON(http.StatusCreated, sub)
	}
}

func ListPushSubscriptions(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		subs, err := database.GetPushSubscriptionsByUserID(c.Request.Context(), pool, userID)
		if err != nil {
			log.Error().Err(err).Msg("could not list push subscriptions")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list push subscriptions"})
			return
		}
		c.JSON(http.StatusOK, subs)
	}
}

type unsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

func RemovePushSubscription(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req unsubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Endpoint == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endpoint is required"})
			return
		}

		endpointID := models.SanitizeEndpoint(req.Endpoint)
		if err := database.DeletePushSubscription(c.Request.Context(), pool, endpointID); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
				return
			}
			log.Error().Err(err).Msg("could not remove push subscription")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not remove push subscription"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "subscription removed"})
	}
}
