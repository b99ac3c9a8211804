package models

import "time"

// CartItem is one line in a user's cart. Display fields and price are
// snapshots taken when the item is added; later catalog changes never
// touch persisted rows. Items are created and deleted, never updated.
type CartItem struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"index;not null"`
	Name          string `gorm:"size:128;not null"`
	Brand         string `gorm:"size:64"`
	Size          string `gorm:"size:16"`
	Color         string `gorm:"size:32"`
	Image         string `gorm:"size:128"`
	Price         int    `gorm:"not null"`
	BaseProductID int    // soft reference to the catalog, not enforced
	IsCustom      bool   `gorm:"not null"`
	CreatedAt     time.Time
}
