package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                // Primary key
	Username string `gorm:"size:100;unique;not null" json:"username"` // Unique username
	Email    string `gorm:"size:100;unique;not null" json:"email"`    // Unique email address
}
