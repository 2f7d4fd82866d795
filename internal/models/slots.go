// internal/models/slots.go
package models

import "strconv"

// SlotField names one piece of request information.
type SlotField string

const (
	FieldProduct  SlotField = "product"
	FieldQuantity SlotField = "quantity"
	FieldSupplier SlotField = "supplier"
	FieldCategory SlotField = "category"
	FieldDays     SlotField = "days"
)

// Quantity is an amount with an optional unit word ("10 kg").
type Quantity struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
}

func (q Quantity) String() string {
	s := strconv.FormatFloat(q.Amount, 'f', -1, 64)
	if q.Unit != "" {
		s += " " + q.Unit
	}
	return s
}

// SlotSet holds the request scoped slot values. A nil field is absent.
type SlotSet struct {
	Product  *string   `json:"product,omitempty"`
	Quantity *Quantity `json:"quantity,omitempty"`
	Supplier *string   `json:"supplier,omitempty"`
	Category *string   `json:"category,omitempty"`
	Days     *int      `json:"days,omitempty"`
}

// Has reports whether a field carries a usable value.
func (s SlotSet) Has(field SlotField) bool {
	switch field {
	case FieldProduct:
		return s.Product != nil && *s.Product != ""
	case FieldQuantity:
		return s.Quantity != nil && s.Quantity.Amount > 0
	case FieldSupplier:
		return s.Supplier != nil && *s.Supplier != ""
	case FieldCategory:
		return s.Category != nil && *s.Category != ""
	case FieldDays:
		return s.Days != nil && *s.Days > 0
	}
	return false
}

// Merge fills absent fields of s from other.
func (s SlotSet) Merge(other SlotSet) SlotSet {
	if !s.Has(FieldProduct) {
		s.Product = other.Product
	}
	if !s.Has(FieldQuantity) {
		s.Quantity = other.Quantity
	}
	if !s.Has(FieldSupplier) {
		s.Supplier = other.Supplier
	}
	if !s.Has(FieldCategory) {
		s.Category = other.Category
	}
	if !s.Has(FieldDays) {
		s.Days = other.Days
	}
	return s
}

// Value returns the string slot value, or "" when absent.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func StringPtr(s string) *string {
	return &s
}
