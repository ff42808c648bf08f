package catalog

// Product is a sellable catalog entry surfaced to the assistant's knowledge
// block and the product CRUD API.
type Product struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
