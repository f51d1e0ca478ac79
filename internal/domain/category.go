package domain

// Category is the fixed material classification used for catalog filtering.
// The set is closed; free-text values never reach the store.
type Category string

const (
	CategoryMadera      Category = "Madera"
	CategoryMetal       Category = "Metal"
	CategoryMaderaMetal Category = "Madera+Metal"
	CategoryCeramica    Category = "Cerámica"
	CategoryVidrio      Category = "Vidrio"
	CategoryOtros       Category = "Otros"

	// CategoryTodos is the synthetic filter option, never stored on a product.
	CategoryTodos Category = "Todos"
)

// Categories lists every storable category in display order.
var Categories = []Category{
	CategoryMadera,
	CategoryMetal,
	CategoryMaderaMetal,
	CategoryCeramica,
	CategoryVidrio,
	CategoryOtros,
}

// Valid reports whether c is one of the storable categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}
