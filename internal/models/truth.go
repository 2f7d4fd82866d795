// internal/models/truth.go
package models

// Truth is the fact record handed to the renderer. Implementations only carry
// values that came from the data-access or notification collaborators.
type Truth interface {
	Intent() Intent
}

// StockTruth answers a by-name stock lookup. Stock is nil when the product was
// not found; Product is empty when no product could be extracted.
type StockTruth struct {
	Product string
	Stock   *float64
	Unit    string
}

func (StockTruth) Intent() Intent { return IntentStockQuery }

// ListTruth answers every listing intent. Filter holds the category or supplier
// name for the filtered listings; Days the look-ahead for expiring products.
type ListTruth struct {
	Kind   Intent
	Filter string
	Days   int
	Items  []ProductLine
}

func (t ListTruth) Intent() Intent { return t.Kind }

type DetailsTruth struct {
	Query   string
	Product *ProductDetail
}

func (DetailsTruth) Intent() Intent { return IntentProductDetails }

type PricingTruth struct {
	Query string
	Price *PriceRecord
}

func (PricingTruth) Intent() Intent { return IntentProductPricing }

type SummaryTruth struct {
	Summary *InventorySummary
}

func (SummaryTruth) Intent() Intent { return IntentInventorySummary }

// OpinionTruth carries the top seller; Top is nil without sales history.
type OpinionTruth struct {
	Top *TopSeller
}

func (OpinionTruth) Intent() Intent { return IntentOpinion }

// StaticTruth covers intents with no facts: greeting, help and unknown.
type StaticTruth struct {
	Kind Intent
}

func (t StaticTruth) Intent() Intent { return t.Kind }

// DemandOutcome is the terminal state of a supplier demand request.
type DemandOutcome string

const (
	DemandSent             DemandOutcome = "sent"
	DemandMissingField     DemandOutcome = "missing_field"
	DemandSupplierNotFound DemandOutcome = "supplier_not_found"
	DemandNotConfigured    DemandOutcome = "not_configured"
	DemandSendFailed       DemandOutcome = "send_failed"
)

// DemandTruth reports what happened to a supplier demand. Missing is set only
// for DemandMissingField.
type DemandTruth struct {
	Outcome  DemandOutcome
	Missing  SlotField
	Supplier string
	Channel  string
	Product  string
	Quantity *Quantity
}

func (DemandTruth) Intent() Intent { return IntentSupplierDemand }
