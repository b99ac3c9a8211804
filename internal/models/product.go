package models

// Product is a catalog entry. The catalog is compiled in and never
// persisted, so this is a plain value type without gorm tags.
type Product struct {
	ID    int
	Name  string
	Price int // whole currency units
	Brand string
	Size  string
	Color string
	Image string
}
