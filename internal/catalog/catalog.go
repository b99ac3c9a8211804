package catalog

import "charm-shop/internal/models"

// Catalog is the fixed set of purchasable products, built once at startup.
// It is read-only after construction, so it is safe for concurrent use.
type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

// New builds a catalog from the given products.
func New(products []models.Product) *Catalog {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns the compiled-in shop catalog.
func Default() *Catalog {
	return New([]models.Product{
		{ID: 1, Name: "Nike Air Charm", Price: 8500, Brand: "Nike", Size: "M", Color: "Black", Image: "product1.jpg"},
		{ID: 2, Name: "Adidas Ultra Charm", Price: 7900, Brand: "Adidas", Size: "L", Color: "White", Image: "product2.jpg"},
		{ID: 3, Name: "Puma RS Charm", Price: 7200, Brand: "Puma", Size: "S", Color: "Red", Image: "product3.jpg"},
		{ID: 4, Name: "Reebok Classic Charm", Price: 6800, Brand: "Reebok", Size: "M", Color: "Blue", Image: "product4.jpg"},
		{ID: 5, Name: "Nike Jordan Charm", Price: 9200, Brand: "Nike", Size: "L", Color: "Black", Image: "product5.jpg"},
		{ID: 6, Name: "Adidas Superstar Charm", Price: 8100, Brand: "Adidas", Size: "S", Color: "White", Image: "product6.jpg"},
		{ID: 7, Name: "Puma Future Charm", Price: 7500, Brand: "Puma", Size: "M", Color: "Grey", Image: "product7.jpg"},
		{ID: 8, Name: "New Balance Charm", Price: 6900, Brand: "New Balance", Size: "L", Color: "Blue", Image: "product8.jpg"},
		{ID: 9, Name: "Vans Old Skool Charm", Price: 6500, Brand: "Vans", Size: "S", Color: "Black", Image: "product9.jpg"},
	})
}

// Products returns a copy of the full product list in catalog order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find looks up a product by id.
func (c *Catalog) Find(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Brands returns the distinct brand names in first-seen order.
func (c *Catalog) Brands() []string {
	seen := make(map[string]bool, len(c.products))
	var brands []string
	for _, p := range c.products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	return brands
}

// Rows splits the product list into rows of n for the catalog page.
func (c *Catalog) Rows(n int) [][]models.Product {
	if n <= 0 {
		n = 3
	}
	var rows [][]models.Product
	for i := 0; i < len(c.products); i += n {
		end := i + n
		if end > len(c.products) {
			end = len(c.products)
		}
		row := make([]models.Product, end-i)
		copy(row, c.products[i:end])
		rows = append(rows, row)
	}
	return rows
}
