package family

import "time"

type Family struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Member is the family-facing projection of a user row. FamilyID mirrors
// users.family_id, so membership and the user's back-reference can never
// disagree.
type Member struct {
	ID        string
	Name      string
	Email     string
	AvatarURL *string
	FamilyID  *string
}
