// Package entity defines the domain entities for the auth feature.
package entity

// CreatedAtLayout is the fixed format of User.CreatedAt.
const CreatedAtLayout = "2006-01-02 15:04:05"

// DefaultRole is assigned to self-registered users.
const DefaultRole = "default"

// User is a stored credential record.
type User struct {
	// ID is assigned by the store on insert.
	ID uint `gorm:"primaryKey"`

	// Email is the login name. Compared case-sensitively, unique across users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash, never the plaintext.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is a UTC timestamp in CreatedAtLayout.
	CreatedAt string `gorm:"size:19;not null"`

	Role string `gorm:"size:32;not null;default:default"`
}

// TableName pins the table name.
func (User) TableName() string { return "users" }
