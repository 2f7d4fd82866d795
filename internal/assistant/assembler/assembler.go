// internal/assistant/assembler/assembler.go

// Package assembler turns an intent and its slots into a Truth built only
// from collaborator data.
package assembler

import (
	"context"
	"time"

	"inventory-assistant/internal/assistant/validator"
	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/common/metrics"
	"inventory-assistant/internal/models"
)

// DefaultExpiryDays is the look-ahead used when the request names none.
const DefaultExpiryDays = 30

// Inventory is the read-only data-access collaborator. Single-record lookups
// return nil, nil when nothing matches.
type Inventory interface {
	StockByName(ctx context.Context, tenantID, name string) (*models.ProductLine, error)
	LowStock(ctx context.Context, tenantID string) ([]models.ProductLine, error)
	DeadStock(ctx context.Context, tenantID string) ([]models.ProductLine, error)
	ProductDetails(ctx context.Context, tenantID, name string) (*models.ProductDetail, error)
	ProductsByCategory(ctx context.Context, tenantID, category string) ([]models.ProductLine, error)
	ProductsBySupplier(ctx context.Context, tenantID, supplier string) ([]models.ProductLine, error)
	ExpiringProducts(ctx context.Context, tenantID string, days int) ([]models.ProductLine, error)
	OverstockedProducts(ctx context.Context, tenantID string) ([]models.ProductLine, error)
	ProductPricing(ctx context.Context, tenantID, name string) (*models.PriceRecord, error)
	InventorySummary(ctx context.Context, tenantID string) (*models.InventorySummary, error)
	TopSellingProduct(ctx context.Context, tenantID string) (*models.TopSeller, error)
}

type Assembler struct {
	inventory Inventory
	log       logger.Logger
}

func New(inventory Inventory, log logger.Logger) *Assembler {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Assembler{
		inventory: inventory,
		log:       log.With(map[string]interface{}{"stage": "assemble"}),
	}
}

// Assemble queries the collaborator for intent. Failures become empty or nil
// facts, never defaults.
func (a *Assembler) Assemble(ctx context.Context, tenantID string, intent models.Intent, slots models.SlotSet) models.Truth {
	start := time.Now()
	defer func() {
		metrics.StageDuration.WithLabelValues("assemble").Observe(time.Since(start).Seconds())
	}()

	switch intent {
	case models.IntentStockQuery:
		return a.stock(ctx, tenantID, slots)

	case models.IntentLowStock:
		items, err := a.inventory.LowStock(ctx, tenantID)
		return models.ListTruth{Kind: intent, Items: a.list(ctx, "low_stock", items, err)}

	case models.IntentDeadStock:
		items, err := a.inventory.DeadStock(ctx, tenantID)
		return models.ListTruth{Kind: intent, Items: a.list(ctx, "dead_stock", items, err)}

	case models.IntentOverstockedProducts:
		items, err := a.inventory.OverstockedProducts(ctx, tenantID)
		return models.ListTruth{Kind: intent, Items: a.list(ctx, "overstocked_products", items, err)}

	case models.IntentExpiringProducts:
		days := DefaultExpiryDays
		if slots.Has(models.FieldDays) {
			days = *slots.Days
		}
		items, err := a.inventory.ExpiringProducts(ctx, tenantID, days)
		return models.ListTruth{Kind: intent, Days: days, Items: a.list(ctx, "expiring_products", items, err)}

	case models.IntentCategoryProducts:
		truth := models.ListTruth{Kind: intent, Filter: models.Value(slots.Category)}
		if truth.Filter != "" {
			items, err := a.inventory.ProductsByCategory(ctx, tenantID, truth.Filter)
			truth.Items = a.list(ctx, "products_by_category", items, err)
		}
		return truth

	case models.IntentSupplierProducts:
		truth := models.ListTruth{Kind: intent, Filter: models.Value(slots.Supplier)}
		if truth.Filter != "" {
			items, err := a.inventory.ProductsBySupplier(ctx, tenantID, truth.Filter)
			truth.Items = a.list(ctx, "products_by_supplier", items, err)
		}
		return truth

	case models.IntentProductDetails:
		truth := models.DetailsTruth{Query: models.Value(slots.Product)}
		if truth.Query != "" {
			p, err := a.inventory.ProductDetails(ctx, tenantID, truth.Query)
			if a.failed(ctx, "product_details", err) {
				p = nil
			}
			truth.Product = p
		}
		return truth

	case models.IntentProductPricing:
		truth := models.PricingTruth{Query: models.Value(slots.Product)}
		if truth.Query != "" {
			p, err := a.inventory.ProductPricing(ctx, tenantID, truth.Query)
			if a.failed(ctx, "product_pricing", err) {
				p = nil
			}
			truth.Price = p
		}
		return truth

	case models.IntentInventorySummary:
		s, err := a.inventory.InventorySummary(ctx, tenantID)
		if a.failed(ctx, "inventory_summary", err) {
			s = nil
		}
		return models.SummaryTruth{Summary: s}

	case models.IntentOpinion:
		top, err := a.inventory.TopSellingProduct(ctx, tenantID)
		if a.failed(ctx, "top_selling_product", err) {
			top = nil
		}
		return models.OpinionTruth{Top: top}

	case models.IntentGreeting, models.IntentHelp:
		return models.StaticTruth{Kind: intent}
	}

	return models.StaticTruth{Kind: models.IntentUnknown}
}

func (a *Assembler) stock(ctx context.Context, tenantID string, slots models.SlotSet) models.Truth {
	truth := models.StockTruth{Product: models.Value(slots.Product)}
	if truth.Product == "" {
		return truth
	}
	line, err := a.inventory.StockByName(ctx, tenantID, truth.Product)
	if a.failed(ctx, "stock_by_name", err) || line == nil {
		return truth
	}
	stock := line.CurrentStock
	truth.Product = line.ProductName
	truth.Stock = &stock
	truth.Unit = line.Unit
	return truth
}

// Demand records the outcome of a supplier demand. outcome and channel are
// only read when the decision is Ready.
func (a *Assembler) Demand(decision validator.Decision, outcome models.DemandOutcome, channel string) models.Truth {
	truth := models.DemandTruth{
		Product:  models.Value(decision.Slots.Product),
		Supplier: models.Value(decision.Slots.Supplier),
		Quantity: decision.Slots.Quantity,
	}
	switch decision.Status {
	case validator.StatusMissingField:
		truth.Outcome = models.DemandMissingField
		truth.Missing = decision.Field
	case validator.StatusSupplierNotFound:
		truth.Outcome = models.DemandSupplierNotFound
	default:
		truth.Outcome = outcome
		truth.Channel = channel
		if decision.Supplier != nil {
			truth.Supplier = decision.Supplier.Name
		}
	}
	return truth
}

func (a *Assembler) list(ctx context.Context, op string, items []models.ProductLine, err error) []models.ProductLine {
	if a.failed(ctx, op, err) {
		return nil
	}
	return items
}

func (a *Assembler) failed(ctx context.Context, op string, err error) bool {
	if err == nil {
		return false
	}
	metrics.DataErrors.WithLabelValues(op).Inc()
	logger.FromContext(ctx, a.log).Warn("data access failed", map[string]interface{}{
		"operation": op,
		"error":     err.Error(),
	})
	return true
}
