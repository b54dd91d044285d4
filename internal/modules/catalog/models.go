package catalog

import "time"

// Product is one sellable menu entry with its trusted unit price.
type Product struct {
	ID         string `gorm:"primaryKey"`
	Name       string `gorm:"uniqueIndex;size:255"`
	PriceCents int64
	Currency   string `gorm:"size:3"`
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Product) TableName() string { return "products" }
