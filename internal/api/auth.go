package api

import (
	"errors"                            // Error kind checks
	"movie_favourites/internal/domain"  // Domain error kinds
	"movie_favourites/internal/service" // Auth service
	"net/http"                          // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for register and login (both take the same pair)
type CredentialsRequest struct {
	Username string `json:"username"` // Username, required (checked by the service)
	Email    string `json:"email"`    // Email, required (checked by the service)
}

// HomeHandler returns a constant acknowledgement
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Home") // Plain text, not JSON
	}
}

// RegisterHandler creates a new user from a username/email pair.
// Validation and conflict failures respond 200 with a message body; only a
// successful creation responds 201. That mapping is the published contract.
func RegisterHandler(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// A malformed body reads as missing fields
			c.JSON(http.StatusOK, gin.H{"message": "Fill all fields"})
			return
		}
		// Delegate to the auth service
		_, err := svc.Register(req.Username, req.Email)
		switch {
		case err == nil:
			// Created
			c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
		case errors.Is(err, domain.ErrValidation):
			// A required field was empty
			c.JSON(http.StatusOK, gin.H{"message": "Fill all fields"})
		case errors.Is(err, domain.ErrEmailTaken):
			// Email uniqueness violated
			c.JSON(http.StatusOK, gin.H{"message": "Email is already in use"})
		case errors.Is(err, domain.ErrUsernameTaken):
			// Username uniqueness violated
			c.JSON(http.StatusOK, gin.H{"message": "Username is taken"})
		case errors.Is(err, domain.ErrConflict):
			// A concurrent duplicate slipped past the pre-checks and hit the unique columns
			c.JSON(http.StatusOK, gin.H{"message": "Username is taken"})
		default:
			// Store failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
	}
}

// LoginHandler authenticates a username/email pair and returns an access token
func LoginHandler(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// A malformed body reads as missing fields
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or email"})
			return
		}
		// Delegate to the auth service
		token, err := svc.Login(req.Username, req.Email)
		switch {
		case err == nil:
			// Return the issued token
			c.JSON(http.StatusOK, gin.H{"access_token": token})
		case errors.Is(err, domain.ErrValidation):
			// A required field was empty
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or email"})
		case errors.Is(err, domain.ErrNotFound):
			// No user with that username
			c.JSON(http.StatusNotFound, gin.H{"message": "Account does not exist"})
		case errors.Is(err, domain.ErrAuth):
			// Email does not match the stored record
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		default:
			// Store failure or token generation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		}
	}
}

// CheckTokenHandler resolves the authenticated user ID back to the stored
// user record. Any failure other than a lookup miss maps to 401, matching
// the published contract.
func CheckTokenHandler(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			// No identity in context
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		// Resolve the ID to a user record
		user, err := svc.Lookup(userID.(uint))
		switch {
		case err == nil:
			// Token resolved to a live user
			c.JSON(http.StatusOK, gin.H{
				"message": "Token is valid",
				"user": gin.H{
					"id":       user.ID,       // User ID
					"username": user.Username, // Username
					"email":    user.Email,    // Email
				},
			})
		case errors.Is(err, domain.ErrNotFound):
			// The token's user no longer exists
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			// Any other lookup failure
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		}
	}
}
