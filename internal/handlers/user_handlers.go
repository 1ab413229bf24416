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

func CreateUser(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if user.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		if err := database.CreateUser(c.Request.Context(), pool, &user); err != nil {
			log.Error().Err(err).Msg("could not create user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

func GetUser(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := database.GetUserByID(c.Request.Context(), pool, c.Param("id"))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			log.Error().Err(err).Msg("could not fetch user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateUser saves the profile, including the onboarding-completed flag and
// the category lists the client edits during setup.
func UpdateUser(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		user.ID = c.Param("id")

		if err := database.UpdateUser(c.Request.Context(), pool, &user); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			log.Error().Err(err).Msg("could not update user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "user updated"})
	}
}
