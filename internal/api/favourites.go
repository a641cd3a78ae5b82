package api

import (
	"context"                           // Context for Redis operations
	"movie_favourites/internal/domain"  // Domain models
	"movie_favourites/internal/service" // Favourite service
	"movie_favourites/internal/utils"   // Cache helpers
	"net/http"                          // HTTP status codes
	"strconv"                           // String conversion
	"time"                              // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// ToggleRequest represents a toggle-favourite request. Pointers distinguish
// an absent key from the zero values movie_id=0 and title="", which are
// both valid input.
type ToggleRequest struct {
	MovieID *int64  `json:"movie_id"` // External movie ID, key must be present
	Title   *string `json:"title"`    // Movie title, key must be present
}

// favouritesCacheKey is the cache key for a user's favourites list
func favouritesCacheKey(userID uint) string {
	return "favourites:user:" + strconv.Itoa(int(userID))
}

// ToggleFavouritesHandler adds the movie to the user's favourites if absent
// and removes it if present. Every failure on this path, malformed body and
// store errors included, maps to 401 with an error message; that is the
// published contract, not an auth decision.
func ToggleFavouritesHandler(svc *service.FavouriteService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			// No identity in context
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req ToggleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Malformed body maps to 401 on this path
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		// Only absent keys fail; zero values pass through to the store
		if req.MovieID == nil || req.Title == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing movie_id or title"})
			return
		}
		// Delegate to the favourite service
		action, err := svc.Toggle(userID.(uint), *req.MovieID, *req.Title)
		if err != nil {
			// Log the failure with context
			logrus.WithFields(logrus.Fields{
				"user_id":  userID,       // Owning user
				"movie_id": *req.MovieID, // Toggled movie
				"error":    err.Error(),  // Error message
			}).Error("Toggle favourite failed")
			// Store failures also map to 401 on this path
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		// Invalidate the cached favourites list for this user
		_ = utils.DeleteCache(context.Background(), rdb, favouritesCacheKey(userID.(uint)))
		// Report which way the toggle went
		c.JSON(http.StatusOK, gin.H{"action": action})
	}
}

// GetFavouritesHandler returns all favourites owned by the authenticated user
// as a JSON array of {movie_id, title}. The list is served from a short-lived
// redis cache when possible; the payload is identical either way.
func GetFavouritesHandler(svc *service.FavouriteService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			// No identity in context
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := context.Background()                   // Context for Redis operations
		cacheKey := favouritesCacheKey(userID.(uint)) // Cache key for this user's list
		var entries []domain.FavouriteEntry
		// Try the cache first
		found, err := utils.GetCache(ctx, rdb, cacheKey, &entries)
		if err == nil && found {
			c.JSON(http.StatusOK, entries) // Return the cached list
			return
		}
		// Not cached: fetch from the store
		entries, err = svc.List(userID.(uint))
		if err != nil {
			// Log the failure with context
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Owning user
				"error":   err.Error(), // Error message
			}).Error("Failed to fetch favourites")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favourites"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, entries, 60*time.Second) // Cache the list for 60 seconds
		c.JSON(http.StatusOK, entries)                                  // Return the list
	}
}
