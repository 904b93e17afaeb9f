package meals

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusNeedsShopping    = "needs_shopping"
	StatusIngredientsReady = "ingredients_ready"
)

func ValidStatus(status string) bool {
	return status == StatusNeedsShopping || status == StatusIngredientsReady
}

// StringList stores an ordered list of strings as a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// Meal is one day's planned menu for a user. Date carries day granularity;
// one record per day per user is expected but not enforced.
type Meal struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"type:uuid;index;not null"`
	Date        time.Time `gorm:"type:date;not null"`
	MainDish    string    `gorm:"not null"`
	SideDish    *string
	Soup        *string
	Ingredients StringList `gorm:"type:jsonb"`
	Status      string     `gorm:"type:varchar(32);not null;default:needs_shopping"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

// Preferences holds a user's stored family-wide meal preferences and
// dietary restrictions, merged into every plan generation request.
type Preferences struct {
	UserID       string     `gorm:"type:uuid;primaryKey"`
	Preferences  StringList `gorm:"type:jsonb"`
	Restrictions StringList `gorm:"type:jsonb"`
}

func (Preferences) TableName() string { return "family_preferences" }

type CreateMealInput struct {
	UserID      string
	Date        time.Time
	MainDish    string
	SideDish    *string
	Soup        *string
	Ingredients []string
	Status      string
}
