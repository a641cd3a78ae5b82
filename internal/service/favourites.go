package service

import (
	"movie_favourites/internal/domain" // Domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Toggle actions
const (
	ActionAdded   = "added"   // A favourite row was created
	ActionRemoved = "removed" // A favourite row was deleted
)

// FavouriteService owns the favourite store: toggling and listing a user's
// chosen movies.
type FavouriteService struct {
	db *gorm.DB // Favourite store handle
}

// NewFavouriteService constructs a FavouriteService around a favourite store
func NewFavouriteService(db *gorm.DB) *FavouriteService {
	return &FavouriteService{db: db}
}

// Toggle removes the favourite for (userID, movieID) if one exists, otherwise
// creates one. The delete is conditional so the existence check and the
// mutation are a single statement; the composite unique index on
// (user_id, movie_id) keeps concurrent inserts from creating duplicates.
func (s *FavouriteService) Toggle(userID uint, movieID int64, title string) (string, error) {
	// Conditional delete doubles as the existence check
	res := s.db.Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&domain.Favourite{})
	if res.Error != nil {
		return "", res.Error // Store failure
	}
	// A row was deleted: the movie was favourited, now it is not
	if res.RowsAffected > 0 {
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,  // Owning user
			"movie_id": movieID, // Toggled movie
		}).Info("Favourite removed")
		return ActionRemoved, nil
	}
	// Nothing to delete: create the favourite
	fav := domain.Favourite{UserID: userID, MovieID: movieID, Title: title}
	if err := s.db.Create(&fav).Error; err != nil {
		return "", err // Store failure (including a concurrent duplicate insert)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  userID,  // Owning user
		"movie_id": movieID, // Toggled movie
		"title":    title,   // Denormalized title
	}).Info("Favourite added")
	return ActionAdded, nil
}

// List returns every favourite owned by the user as wire entries. Order is
// store-native and not guaranteed stable.
func (s *FavouriteService) List(userID uint) ([]domain.FavouriteEntry, error) {
	var favourites []domain.Favourite
	// Fetch all favourites for the user
	if err := s.db.Where("user_id = ?", userID).Find(&favourites).Error; err != nil {
		return nil, err // Store failure
	}
	// Map rows to the wire shape
	entries := make([]domain.FavouriteEntry, len(favourites))
	for i, fav := range favourites {
		entries[i] = domain.FavouriteEntry{
			MovieID: fav.MovieID, // External movie ID
			Title:   fav.Title,   // Denormalized title
		}
	}
	return entries, nil
}
