// internal/models/intent.go
package models

import "strings"

// Intent is the closed set of request classifications.
type Intent string

const (
	IntentStockQuery          Intent = "STOCK_QUERY"
	IntentLowStock            Intent = "LOW_STOCK"
	IntentDeadStock           Intent = "DEAD_STOCK"
	IntentProductDetails      Intent = "PRODUCT_DETAILS"
	IntentCategoryProducts    Intent = "CATEGORY_PRODUCTS"
	IntentSupplierProducts    Intent = "SUPPLIER_PRODUCTS"
	IntentExpiringProducts    Intent = "EXPIRING_PRODUCTS"
	IntentOverstockedProducts Intent = "OVERSTOCKED_PRODUCTS"
	IntentProductPricing      Intent = "PRODUCT_PRICING"
	IntentInventorySummary    Intent = "INVENTORY_SUMMARY"
	IntentSupplierDemand      Intent = "SUPPLIER_DEMAND"
	IntentOpinion             Intent = "OPINION"
	IntentGreeting            Intent = "GREETING"
	IntentHelp                Intent = "HELP"
	IntentUnknown             Intent = "UNKNOWN"
)

var allIntents = []Intent{
	IntentStockQuery,
	IntentLowStock,
	IntentDeadStock,
	IntentProductDetails,
	IntentCategoryProducts,
	IntentSupplierProducts,
	IntentExpiringProducts,
	IntentOverstockedProducts,
	IntentProductPricing,
	IntentInventorySummary,
	IntentSupplierDemand,
	IntentOpinion,
	IntentGreeting,
	IntentHelp,
	IntentUnknown,
}

// AllIntents returns a copy of the closed set in declaration order.
func AllIntents() []Intent {
	out := make([]Intent, len(allIntents))
	copy(out, allIntents)
	return out
}

// ParseIntent accepts a token only if it names a member of the set exactly,
// ignoring case and surrounding whitespace.
func ParseIntent(token string) (Intent, bool) {
	candidate := Intent(strings.ToUpper(strings.TrimSpace(token)))
	for _, in := range allIntents {
		if in == candidate {
			return in, true
		}
	}
	return IntentUnknown, false
}

// SideEffecting reports whether fulfilling the intent contacts a third party.
func (i Intent) SideEffecting() bool {
	return i == IntentSupplierDemand
}

func (i Intent) String() string {
	return string(i)
}
