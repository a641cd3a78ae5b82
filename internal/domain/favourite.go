package domain

// Favourite Model
type Favourite struct {
	ID      uint   `gorm:"primaryKey" json:"id"`                              // Primary key
	UserID  uint   `gorm:"not null;uniqueIndex:idx_user_movie" json:"user_id"` // Foreign key to the owning User
	MovieID int64  `gorm:"not null;uniqueIndex:idx_user_movie" json:"movie_id"` // External movie catalog ID
	Title   string `gorm:"size:200;not null" json:"title"`                     // Denormalized movie title supplied by the caller
	User    *User  `gorm:"foreignKey:UserID" json:"-"`                         // Owning user relation
}

// FavouriteEntry is the wire shape of a favourite in list responses
type FavouriteEntry struct {
	MovieID int64  `json:"movie_id"` // External movie catalog ID
	Title   string `json:"title"`    // Movie title
}
