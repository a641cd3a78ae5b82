package service

import (
	"errors"                          // Error kind checks
	"fmt"                             // Error wrapping
	"movie_favourites/internal/domain" // Domain models and error kinds
	"movie_favourites/internal/utils"  // JWT utility functions

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// AuthService establishes identity from a username/email pair and issues
// access tokens. There is no password anywhere in the contract: possession of
// a stored username+email pair is the whole authentication factor.
type AuthService struct {
	db     *gorm.DB // User store handle
	secret string   // Token signing secret
}

// NewAuthService constructs an AuthService around a user store and secret
func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{db: db, secret: secret}
}

// Register creates a new user after checking both uniqueness constraints.
// The email check runs before the username check so the caller sees the
// email conflict first when both collide.
func (s *AuthService) Register(username, email string) (*domain.User, error) {
	// Both fields are required
	if username == "" || email == "" {
		return nil, domain.ErrValidation
	}
	var existing domain.User
	// Check email uniqueness first
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err // Store failure
	}
	// Then check username uniqueness
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err // Store failure
	}
	user := domain.User{Username: username, Email: email}
	// The unique columns are the real guard; a concurrent duplicate that slips
	// past the checks above fails here with a duplicate-key error.
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	// Log the new registration
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,       // New user ID
		"username": user.Username, // Username
	}).Info("User registered")
	return &user, nil
}

// Login looks a user up by username, asserts the stored pair matches the
// supplied one, and issues a signed access token for the user's ID.
func (s *AuthService) Login(username, email string) (string, error) {
	// Both fields are required
	if username == "" || email == "" {
		return "", domain.ErrValidation
	}
	var user domain.User
	// Look the user up by username
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound // No such account
		}
		return "", err // Store failure
	}
	// The username matched the lookup; the email must match the stored record too
	if user.Username != username || user.Email != email {
		return "", domain.ErrAuth
	}
	token, err := utils.GenerateJWT(user.ID, s.secret) // Issue the access token
	if err != nil {
		return "", err
	}
	// Log the login
	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,       // User ID
		"username": user.Username, // Username
	}).Info("User logged in")
	return token, nil
}

// Lookup resolves a user ID (typically recovered from a token) to the stored
// User record
func (s *AuthService) Lookup(userID uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound // User no longer exists
		}
		return nil, err // Store failure
	}
	return &user, nil
}
