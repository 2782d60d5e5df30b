package models

// User represents a registered reader. Passwords are stored as PBKDF2 hashes only.
type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Email    string    `gorm:"size:100;uniqueIndex" json:"email"`
	Password string    `gorm:"size:255" json:"-"`
	Name     string    `gorm:"size:1000" json:"name"`
	Posts    []Post    `gorm:"foreignKey:AuthorID" json:"-"`
	Comments []Comment `gorm:"foreignKey:AuthorID" json:"-"`
}
