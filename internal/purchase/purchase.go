package purchase

// Record is one purchase row: how much a person spent on a product. Several
// rows may exist for the same (person, product) pair; consumers aggregate.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Record struct {
	PersonID    int     `json:"personId"`
	ProductName string  `json:"productName"`
	Amount      float64 `json:"amount"`
}

// Summary is an aggregated view of a person's spend on one product.
type Summary struct {
	ProductName string  `json:"productName"`
	Amount      float64 `json:"amount"`
}
