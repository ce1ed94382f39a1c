package models

// Product is a catalog entry. Each product is rendered as an add-to-cart
// trigger whose data attributes become the LineItem.
type Product struct {
	ID    string  `yaml:"id" json:"id"`
	Name  string  `yaml:"name" json:"name"`
	Price float64 `yaml:"price" json:"price"`
	Image string  `yaml:"image" json:"image"`
}

// LineItem converts the product into the payload an add-to-cart click carries.
func (p Product) LineItem() LineItem {
	return LineItem{Name: p.Name, Price: p.Price, Image: p.Image}
}
