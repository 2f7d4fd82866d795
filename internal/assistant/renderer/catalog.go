// internal/assistant/renderer/catalog.go
package renderer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"inventory-assistant/internal/models"
)

// Catalog is the read-only set of language profiles.
type Catalog struct {
	profiles    map[string]LanguageProfile
	defaultCode string
}

// NewCatalog checks that every profile can render every intent, for empty
// and populated facts alike, and that defaultCode names one of them.
func NewCatalog(defaultCode string, profiles ...LanguageProfile) (*Catalog, error) {
	c := &Catalog{profiles: make(map[string]LanguageProfile, len(profiles))}
	for _, p := range profiles {
		if err := checkProfile(p); err != nil {
			return nil, err
		}
		c.profiles[strings.ToLower(p.Code)] = p
	}

	def, ok := c.profiles[strings.ToLower(defaultCode)]
	if !ok {
		return nil, fmt.Errorf("default language %q has no profile", defaultCode)
	}
	c.defaultCode = def.Code
	return c, nil
}

// Lookup matches code exactly, then by primary subtag, then returns the
// default profile.
func (c *Catalog) Lookup(code string) LanguageProfile {
	code = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(code, "_", "-")))
	if p, ok := c.profiles[code]; ok {
		return p
	}
	if primary, _, _ := strings.Cut(code, "-"); primary != "" {
		for _, k := range c.Codes() {
			if strings.HasPrefix(strings.ToLower(k), primary+"-") {
				return c.profiles[strings.ToLower(k)]
			}
		}
	}
	return c.profiles[strings.ToLower(c.defaultCode)]
}

func (c *Catalog) Default() LanguageProfile {
	return c.profiles[strings.ToLower(c.defaultCode)]
}

// Codes lists the profile codes in sorted order.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.profiles))
	for _, p := range c.profiles {
		codes = append(codes, p.Code)
	}
	sort.Strings(codes)
	return codes
}

func checkProfile(p LanguageProfile) error {
	if p.Code == "" {
		return fmt.Errorf("language profile without code")
	}
	if p.Script == nil {
		return fmt.Errorf("language %s: no script table", p.Code)
	}
	for _, kind := range []MessageKind{MessageEmptyInput, MessageFailure} {
		if strings.TrimSpace(p.Messages[kind]) == "" {
			return fmt.Errorf("language %s: no %s message", p.Code, kind)
		}
	}
	for _, intent := range models.AllIntents() {
		tmpl, ok := p.Templates[intent]
		if !ok || tmpl == nil {
			return fmt.Errorf("language %s: no template for %s", p.Code, intent)
		}
		for i, truth := range probes(intent) {
			out := tmpl(truth)
			if strings.TrimSpace(out) == "" {
				return fmt.Errorf("language %s: %s renders empty for probe %d", p.Code, intent, i)
			}
			if strings.Contains(out, "%!") {
				return fmt.Errorf("language %s: %s has a bad format for probe %d: %s", p.Code, intent, i, out)
			}
		}
	}
	return nil
}

// probes returns empty and populated facts for intent.
func probes(intent models.Intent) []models.Truth {
	expiry := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	price := 12.5
	items := make([]models.ProductLine, maxListed+2)
	for i := range items {
		items[i] = models.ProductLine{ProductName: fmt.Sprintf("p%d", i), CurrentStock: float64(i), Unit: "kg", ExpiryDate: &expiry}
	}

	switch intent {
	case models.IntentStockQuery:
		stock := 4.0
		return []models.Truth{
			models.StockTruth{},
			models.StockTruth{Product: "p"},
			models.StockTruth{Product: "p", Stock: &stock, Unit: "kg"},
		}
	case models.IntentLowStock, models.IntentDeadStock, models.IntentOverstockedProducts,
		models.IntentExpiringProducts, models.IntentCategoryProducts, models.IntentSupplierProducts:
		return []models.Truth{
			models.ListTruth{Kind: intent},
			models.ListTruth{Kind: intent, Filter: "f", Days: 30},
			models.ListTruth{Kind: intent, Filter: "f", Days: 30, Items: items[:1]},
			models.ListTruth{Kind: intent, Filter: "f", Days: 30, Items: items},
		}
	case models.IntentProductDetails:
		return []models.Truth{
			models.DetailsTruth{},
			models.DetailsTruth{Query: "p"},
			models.DetailsTruth{Query: "p", Product: &models.ProductDetail{ProductName: "p"}},
			models.DetailsTruth{Query: "p", Product: &models.ProductDetail{
				ProductName: "p", Unit: "kg", Category: "c", Supplier: "s", SellingPrice: &price, ExpiryDate: &expiry,
			}},
		}
	case models.IntentProductPricing:
		return []models.Truth{
			models.PricingTruth{},
			models.PricingTruth{Query: "p"},
			models.PricingTruth{Query: "p", Price: &models.PriceRecord{ProductName: "p", SellingPrice: price}},
			models.PricingTruth{Query: "p", Price: &models.PriceRecord{ProductName: "p", PurchasePrice: 10, SellingPrice: price, ProfitMargin: &price}},
		}
	case models.IntentInventorySummary:
		return []models.Truth{
			models.SummaryTruth{},
			models.SummaryTruth{Summary: &models.InventorySummary{TotalProducts: 2, TotalStock: 3}},
		}
	case models.IntentOpinion:
		return []models.Truth{
			models.OpinionTruth{},
			models.OpinionTruth{Top: &models.TopSeller{ProductName: "p", TotalSold: 9}},
		}
	case models.IntentSupplierDemand:
		qty := &models.Quantity{Amount: 2, Unit: "kg"}
		var out []models.Truth
		for _, f := range []models.SlotField{models.FieldSupplier, models.FieldProduct, models.FieldQuantity} {
			out = append(out,
				models.DemandTruth{Outcome: models.DemandMissingField, Missing: f},
				models.DemandTruth{Outcome: models.DemandMissingField, Missing: f, Product: "p", Supplier: "s"})
		}
		for _, o := range []models.DemandOutcome{models.DemandSupplierNotFound, models.DemandNotConfigured, models.DemandSendFailed} {
			out = append(out, models.DemandTruth{Outcome: o, Supplier: "s", Product: "p", Quantity: qty})
		}
		return append(out,
			models.DemandTruth{Outcome: models.DemandSent, Supplier: "s", Product: "p", Quantity: qty, Channel: "email"},
			models.DemandTruth{Outcome: models.DemandSent, Supplier: "s", Product: "p", Quantity: qty, Channel: "sms"})
	}
	return []models.Truth{models.StaticTruth{Kind: intent}}
}
