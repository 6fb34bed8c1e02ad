package product

import (
	"strconv"
	"strings"
)

// Product represents a catalog row. The product name is the unique key and
// is what purchase records reference.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Product struct {
	Name            string  `json:"productName"`
	Category        string  `json:"category"`
	Subcategory     *string `json:"subcategory,omitempty"`
	Price           float64 `json:"price"`
	HealthyIndex    float64 `json:"healthyIndex"`
	Discount        int     `json:"discount"`
	BasicNeedsIndex int     `json:"basicNeedsIndex"`
}

// BasicNeedsFlag marks a product as an essential / staple item.
const BasicNeedsFlag = 10

// BasicNeedsNone is the default for products without a basic-needs rating.
const BasicNeedsNone = -1

// IsBasicNeed reports whether the product is flagged as a staple item.
func (p Product) IsBasicNeed() bool {
	return p.BasicNeedsIndex == BasicNeedsFlag
}

// NormalizePrice parses a price value from the dataset. Some sources use a
// comma decimal separator, so commas are converted to dots before parsing.
func NormalizePrice(raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return strconv.ParseFloat(s, 64)
}
