package user

import "time"

// User is a registered account. FamilyID is nullable: a user belongs to at
// most one family at a time, and a family's member set is exactly the users
// whose FamilyID points at it.
type User struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	AvatarURL    *string
	FamilyID     *string   `gorm:"type:uuid;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateProfileInput struct {
	ID        string
	Name      *string
	AvatarURL *string
}
