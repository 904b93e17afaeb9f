package shopping

import "time"

const (
	CategoryProduce   = "produce"
	CategoryMeatFish  = "meat_fish"
	CategoryDairy     = "dairy"
	CategorySeasoning = "seasoning"
	CategoryBeverage  = "beverage"
	CategoryOther     = "other"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryProduce, CategoryMeatFish, CategoryDairy,
		CategorySeasoning, CategoryBeverage, CategoryOther:
		return true
	}
	return false
}

// Item is a purchasable entry on the deployment-wide shopping list. The
// list is global, not family-partitioned.
type Item struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"not null"`
	Quantity  *string
	Category  string    `gorm:"type:varchar(16);not null;default:other"`
	Purchased bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Item) TableName() string { return "shopping_items" }

type ListFilter struct {
	Category  string
	Purchased *bool
}

type AddItemInput struct {
	Name     string
	Quantity *string
	Category string
}

type UpdateItemInput struct {
	ID        string
	Name      *string
	Quantity  *string
	Category  *string
	Purchased *bool
}
