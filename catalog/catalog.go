// Package catalog holds the fixed list of products the shop sells.
package catalog

type Product struct {
	Name  string
	Price int64 // Integer currency units
	Image string
}

var products = []Product{
	{Name: "Pizza", Price: 299, Image: "images/pizza.jpg"},
	{Name: "Burger", Price: 199, Image: "images/burger.jpg"},
	{Name: "Pasta", Price: 249, Image: "images/pasta.jpg"},
	{Name: "Sandwich", Price: 149, Image: "images/sandwich.jpg"},
	{Name: "Salad", Price: 99, Image: "images/salad.jpg"},
}

// Products returns the catalog in display order. The slice is a copy.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Lookup finds a product by its exact name.
func Lookup(name string) (Product, bool) {
	for _, p := range products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}
