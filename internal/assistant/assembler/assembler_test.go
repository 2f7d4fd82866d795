// internal/assistant/assembler/assembler_test.go
package assembler

import (
	"context"
	"errors"
	"testing"

	"inventory-assistant/internal/assistant/validator"
	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInventory serves canned data and records the last call.
type stubInventory struct {
	line    *models.ProductLine
	items   []models.ProductLine
	detail  *models.ProductDetail
	price   *models.PriceRecord
	summary *models.InventorySummary
	top     *models.TopSeller
	err     error

	calls    []string
	lastArg  string
	lastDays int
}

func (s *stubInventory) record(op, arg string) {
	s.calls = append(s.calls, op)
	s.lastArg = arg
}

func (s *stubInventory) StockByName(_ context.Context, _, name string) (*models.ProductLine, error) {
	s.record("StockByName", name)
	return s.line, s.err
}

func (s *stubInventory) LowStock(context.Context, string) ([]models.ProductLine, error) {
	s.record("LowStock", "")
	return s.items, s.err
}

func (s *stubInventory) DeadStock(context.Context, string) ([]models.ProductLine, error) {
	s.record("DeadStock", "")
	return s.items, s.err
}

func (s *stubInventory) ProductDetails(_ context.Context, _, name string) (*models.ProductDetail, error) {
	s.record("ProductDetails", name)
	return s.detail, s.err
}

func (s *stubInventory) ProductsByCategory(_ context.Context, _, category string) ([]models.ProductLine, error) {
	s.record("ProductsByCategory", category)
	return s.items, s.err
}

func (s *stubInventory) ProductsBySupplier(_ context.Context, _, supplier string) ([]models.ProductLine, error) {
	s.record("ProductsBySupplier", supplier)
	return s.items, s.err
}

func (s *stubInventory) ExpiringProducts(_ context.Context, _ string, days int) ([]models.ProductLine, error) {
	s.record("ExpiringProducts", "")
	s.lastDays = days
	return s.items, s.err
}

func (s *stubInventory) OverstockedProducts(context.Context, string) ([]models.ProductLine, error) {
	s.record("OverstockedProducts", "")
	return s.items, s.err
}

func (s *stubInventory) ProductPricing(_ context.Context, _, name string) (*models.PriceRecord, error) {
	s.record("ProductPricing", name)
	return s.price, s.err
}

func (s *stubInventory) InventorySummary(context.Context, string) (*models.InventorySummary, error) {
	s.record("InventorySummary", "")
	return s.summary, s.err
}

func (s *stubInventory) TopSellingProduct(context.Context, string) (*models.TopSeller, error) {
	s.record("TopSellingProduct", "")
	return s.top, s.err
}

func TestAssemble_Stock(t *testing.T) {
	ctx := context.Background()

	inv := &stubInventory{line: &models.ProductLine{ProductName: "Rice", CurrentStock: 40, Unit: "kg"}}
	truth := New(inv, logger.NewTestLogger(t)).Assemble(ctx, "t1", models.IntentStockQuery,
		models.SlotSet{Product: models.StringPtr("rice")})

	st, ok := truth.(models.StockTruth)
	require.True(t, ok)
	require.NotNil(t, st.Stock)
	assert.Equal(t, 40.0, *st.Stock)
	assert.Equal(t, "kg", st.Unit)
	assert.Equal(t, "Rice", st.Product)
	assert.Equal(t, "rice", inv.lastArg)
}

func TestAssemble_StockNotFoundIsNil(t *testing.T) {
	ctx := context.Background()

	for name, inv := range map[string]*stubInventory{
		"not found": {},
		"error":     {err: errors.New("db down")},
	} {
		t.Run(name, func(t *testing.T) {
			truth := New(inv, nil).Assemble(ctx, "t1", models.IntentStockQuery,
				models.SlotSet{Product: models.StringPtr("saffron")})
			st := truth.(models.StockTruth)
			assert.Nil(t, st.Stock)
			assert.Equal(t, "saffron", st.Product)
		})
	}
}

func TestAssemble_NoProductSkipsLookup(t *testing.T) {
	inv := &stubInventory{}
	a := New(inv, nil)

	assert.Equal(t, models.StockTruth{}, a.Assemble(context.Background(), "t1", models.IntentStockQuery, models.SlotSet{}))
	assert.Equal(t, models.DetailsTruth{}, a.Assemble(context.Background(), "t1", models.IntentProductDetails, models.SlotSet{}))
	assert.Equal(t, models.PricingTruth{}, a.Assemble(context.Background(), "t1", models.IntentProductPricing, models.SlotSet{}))
	assert.Empty(t, inv.calls)
}

func TestAssemble_Listings(t *testing.T) {
	ctx := context.Background()
	items := []models.ProductLine{{ProductName: "Sugar", CurrentStock: 2, Unit: "kg"}}

	tests := []struct {
		intent models.Intent
		slots  models.SlotSet
		call   string
		filter string
	}{
		{models.IntentLowStock, models.SlotSet{}, "LowStock", ""},
		{models.IntentDeadStock, models.SlotSet{}, "DeadStock", ""},
		{models.IntentOverstockedProducts, models.SlotSet{}, "OverstockedProducts", ""},
		{models.IntentCategoryProducts, models.SlotSet{Category: models.StringPtr("grains")}, "ProductsByCategory", "grains"},
		{models.IntentSupplierProducts, models.SlotSet{Supplier: models.StringPtr("Ram Traders")}, "ProductsBySupplier", "Ram Traders"},
	}

	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			inv := &stubInventory{items: items}
			truth := New(inv, nil).Assemble(ctx, "t1", tt.intent, tt.slots)

			list, ok := truth.(models.ListTruth)
			require.True(t, ok)
			assert.Equal(t, tt.intent, list.Intent())
			assert.Equal(t, tt.filter, list.Filter)
			assert.Equal(t, items, list.Items)
			assert.Equal(t, []string{tt.call}, inv.calls)
		})
	}
}

func TestAssemble_ListErrorIsEmpty(t *testing.T) {
	inv := &stubInventory{items: []models.ProductLine{{ProductName: "x"}}, err: errors.New("timeout")}
	truth := New(inv, nil).Assemble(context.Background(), "t1", models.IntentLowStock, models.SlotSet{})
	assert.Empty(t, truth.(models.ListTruth).Items)
}

func TestAssemble_FilteredListingWithoutFilter(t *testing.T) {
	inv := &stubInventory{}
	a := New(inv, nil)

	truth := a.Assemble(context.Background(), "t1", models.IntentCategoryProducts, models.SlotSet{})
	assert.Equal(t, models.ListTruth{Kind: models.IntentCategoryProducts}, truth)
	assert.Empty(t, inv.calls)
}

func TestAssemble_ExpiringDays(t *testing.T) {
	inv := &stubInventory{}
	a := New(inv, nil)

	truth := a.Assemble(context.Background(), "t1", models.IntentExpiringProducts, models.SlotSet{})
	assert.Equal(t, DefaultExpiryDays, inv.lastDays)
	assert.Equal(t, DefaultExpiryDays, truth.(models.ListTruth).Days)

	seven := 7
	truth = a.Assemble(context.Background(), "t1", models.IntentExpiringProducts, models.SlotSet{Days: &seven})
	assert.Equal(t, 7, inv.lastDays)
	assert.Equal(t, 7, truth.(models.ListTruth).Days)
}

func TestAssemble_Records(t *testing.T) {
	ctx := context.Background()
	margin := 25.0
	inv := &stubInventory{
		detail:  &models.ProductDetail{ProductName: "Rice", Unit: "kg", CurrentStock: 40},
		price:   &models.PriceRecord{ProductName: "Rice", PurchasePrice: 40, SellingPrice: 50, ProfitMargin: &margin},
		summary: &models.InventorySummary{TotalProducts: 3},
		top:     &models.TopSeller{ProductName: "Rice", TotalSold: 120},
	}
	a := New(inv, nil)
	rice := models.SlotSet{Product: models.StringPtr("rice")}

	assert.Equal(t, inv.detail, a.Assemble(ctx, "t1", models.IntentProductDetails, rice).(models.DetailsTruth).Product)
	assert.Equal(t, inv.price, a.Assemble(ctx, "t1", models.IntentProductPricing, rice).(models.PricingTruth).Price)
	assert.Equal(t, inv.summary, a.Assemble(ctx, "t1", models.IntentInventorySummary, models.SlotSet{}).(models.SummaryTruth).Summary)
	assert.Equal(t, inv.top, a.Assemble(ctx, "t1", models.IntentOpinion, models.SlotSet{}).(models.OpinionTruth).Top)

	inv.err = errors.New("db down")
	assert.Nil(t, a.Assemble(ctx, "t1", models.IntentProductDetails, rice).(models.DetailsTruth).Product)
	assert.Nil(t, a.Assemble(ctx, "t1", models.IntentProductPricing, rice).(models.PricingTruth).Price)
	assert.Nil(t, a.Assemble(ctx, "t1", models.IntentInventorySummary, models.SlotSet{}).(models.SummaryTruth).Summary)
	assert.Nil(t, a.Assemble(ctx, "t1", models.IntentOpinion, models.SlotSet{}).(models.OpinionTruth).Top)
}

func TestAssemble_Static(t *testing.T) {
	inv := &stubInventory{}
	a := New(inv, nil)

	for _, intent := range []models.Intent{models.IntentGreeting, models.IntentHelp, models.IntentUnknown, models.Intent("BOGUS")} {
		truth := a.Assemble(context.Background(), "t1", intent, models.SlotSet{})
		_, ok := truth.(models.StaticTruth)
		assert.True(t, ok, intent.String())
	}
	assert.Equal(t, models.IntentUnknown, a.Assemble(context.Background(), "t1", models.Intent("BOGUS"), models.SlotSet{}).Intent())
	assert.Empty(t, inv.calls)
}

func TestDemand(t *testing.T) {
	a := New(&stubInventory{}, nil)
	qty := &models.Quantity{Amount: 10, Unit: "kg"}
	slots := models.SlotSet{Product: models.StringPtr("rice"), Quantity: qty}

	truth := a.Demand(validator.Decision{Status: validator.StatusMissingField, Field: models.FieldSupplier, Slots: slots}, "", "")
	assert.Equal(t, models.DemandTruth{
		Outcome:  models.DemandMissingField,
		Missing:  models.FieldSupplier,
		Product:  "rice",
		Quantity: qty,
	}, truth)

	slots.Supplier = models.StringPtr("ram traders")
	truth = a.Demand(validator.Decision{Status: validator.StatusSupplierNotFound, Slots: slots}, models.DemandSent, "email")
	d := truth.(models.DemandTruth)
	assert.Equal(t, models.DemandSupplierNotFound, d.Outcome)
	assert.Equal(t, "ram traders", d.Supplier)
	assert.Empty(t, d.Channel)

	ready := validator.Decision{
		Status:   validator.StatusReady,
		Slots:    slots,
		Supplier: &models.Supplier{Name: "Ram Traders", Email: "ram@example.com"},
	}
	d = a.Demand(ready, models.DemandSent, "email").(models.DemandTruth)
	assert.Equal(t, models.DemandSent, d.Outcome)
	assert.Equal(t, "Ram Traders", d.Supplier)
	assert.Equal(t, "email", d.Channel)

	d = a.Demand(ready, models.DemandNotConfigured, "").(models.DemandTruth)
	assert.Equal(t, models.DemandNotConfigured, d.Outcome)
}
