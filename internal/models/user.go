package models

// User is a login account. Only the bcrypt hash of the password is kept.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	Username     string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"password_hash"`
}
