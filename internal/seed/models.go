// internal/seed/models.go
package seed

import "time"

// User mirrors the core API's users table. Only the columns the seed
// touches are declared; gorm leaves the rest alone.
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	ContactNo string    `gorm:"not null"`
	Role      string    `gorm:"type:varchar(16);not null"`
	Status    string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Admin mirrors the core API's admins table: the profile row every ADMIN
// user has alongside its account.
type Admin struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `gorm:"uniqueIndex;type:uuid;not null"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
