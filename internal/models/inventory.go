// internal/models/inventory.go
package models

import "time"

// ProductLine is one product row as the listing and stock queries return it.
type ProductLine struct {
	ProductName   string     `json:"productName"`
	CurrentStock  float64    `json:"currentStock"`
	Unit          string     `json:"unit"`
	MinStockLevel *float64   `json:"minStockLevel,omitempty"`
	MaxStockLevel *float64   `json:"maxStockLevel,omitempty"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
}

type ProductDetail struct {
	ProductName   string     `json:"productName"`
	SKU           string     `json:"sku,omitempty"`
	Barcode       string     `json:"barcode,omitempty"`
	Unit          string     `json:"unit"`
	Category      string     `json:"category,omitempty"`
	Supplier      string     `json:"supplier,omitempty"`
	Description   string     `json:"description,omitempty"`
	CurrentStock  float64    `json:"currentStock"`
	PurchasePrice *float64   `json:"purchasePrice,omitempty"`
	SellingPrice  *float64   `json:"sellingPrice,omitempty"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
}

// PriceRecord carries prices and the derived margin; the margin is nil when
// the purchase price is zero or unknown.
type PriceRecord struct {
	ProductName   string   `json:"productName"`
	Unit          string   `json:"unit"`
	PurchasePrice float64  `json:"purchasePrice"`
	SellingPrice  float64  `json:"sellingPrice"`
	ProfitMargin  *float64 `json:"profitMargin,omitempty"`
}

type InventorySummary struct {
	TotalProducts     int     `json:"totalProducts"`
	TotalStock        float64 `json:"totalStock"`
	TotalValue        float64 `json:"totalValue"`
	TotalSellingValue float64 `json:"totalSellingValue"`
	PotentialProfit   float64 `json:"potentialProfit"`
}

type TopSeller struct {
	ProductName string  `json:"productName"`
	TotalSold   float64 `json:"totalSold"`
	Unit        string  `json:"unit,omitempty"`
}

// Supplier is a directory entry.
type Supplier struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (s Supplier) HasContact() bool {
	return s.Email != "" || s.Phone != ""
}
