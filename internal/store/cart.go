package store

import (
	"fmt"

	"charm-shop/internal/catalog"
	"charm-shop/internal/customize"
	"charm-shop/internal/models"

	"gorm.io/gorm"
)

// CartStore owns the cart_items table. Every line item is a snapshot:
// product fields and price are copied at add-time and never re-read from
// the catalog. Each call is a single unit of work.
type CartStore struct {
	db      *gorm.DB
	catalog *catalog.Catalog
}

func NewCartStore(db *gorm.DB, cat *catalog.Catalog) *CartStore {
	return &CartStore{db: db, catalog: cat}
}

// AddCatalogItem snapshots the catalog product into a new cart line for
// the user. Unknown product ids reject with ErrProductNotFound.
func (s *CartStore) AddCatalogItem(userID uint, productID int) (*models.CartItem, error) {
	p, ok := s.catalog.Find(productID)
	if !ok {
		return nil, ErrProductNotFound
	}

	item := models.CartItem{
		UserID:        userID,
		Name:          p.Name,
		Brand:         p.Brand,
		Size:          p.Size,
		Color:         p.Color,
		Image:         p.Image,
		Price:         p.Price,
		BaseProductID: p.ID,
		IsCustom:      false,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}
	return &item, nil
}

// AddCustomItem persists a pre-validated customization as a cart line.
// The price is the base product's, snapshotted like any other item.
func (s *CartStore) AddCustomItem(userID uint, d customize.Descriptor) (*models.CartItem, error) {
	item := models.CartItem{
		UserID:        userID,
		Name:          fmt.Sprintf("%s — custom (%s, %s)", d.Base.Name, d.Size, d.Color),
		Brand:         d.Base.Brand,
		Size:          d.Size,
		Color:         d.Color,
		Image:         d.Base.Image,
		Price:         d.Base.Price,
		BaseProductID: d.Base.ID,
		IsCustom:      true,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create custom cart item: %w", err)
	}
	return &item, nil
}

// Remove deletes a cart line owned by the user. A missing item or one
// owned by someone else is silently a no-op; client flows rely on
// removal being retry-safe.
func (s *CartStore) Remove(userID, itemID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return fmt.Errorf("delete cart item: %w", result.Error)
	}
	return nil
}

// ListFor returns the user's cart lines in insertion order.
func (s *CartStore) ListFor(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	return items, nil
}

// Total sums the snapshot prices of the given lines for the cart page.
func Total(items []models.CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Price
	}
	return total
}
