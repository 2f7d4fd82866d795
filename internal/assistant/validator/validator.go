// internal/assistant/validator/validator.go

// Package validator gates side-effecting intents on complete slots and a
// reachable supplier.
package validator

import (
	"context"
	"strings"

	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/common/metrics"
	"inventory-assistant/internal/models"
)

// Status is the terminal outcome of validation.
type Status string

const (
	StatusReady            Status = "ready"
	StatusMissingField     Status = "missing_field"
	StatusSupplierNotFound Status = "supplier_not_found"
)

// requiredFields is checked in order; the first gap is reported.
var requiredFields = []models.SlotField{
	models.FieldSupplier,
	models.FieldProduct,
	models.FieldQuantity,
}

// SupplierDirectory resolves a supplier name for a tenant. A nil supplier
// with a nil error means not found.
type SupplierDirectory interface {
	SupplierByName(ctx context.Context, tenantID, name string) (*models.Supplier, error)
}

// Decision is what Validate concluded. Supplier is set only when Ready for a
// side-effecting intent.
type Decision struct {
	Status   Status
	Field    models.SlotField
	Slots    models.SlotSet
	Supplier *models.Supplier
}

func (d Decision) Ready() bool {
	return d.Status == StatusReady
}

type Validator struct {
	directory SupplierDirectory
	log       logger.Logger
}

func New(directory SupplierDirectory, log logger.Logger) *Validator {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Validator{
		directory: directory,
		log:       log.With(map[string]interface{}{"stage": "validate"}),
	}
}

// RequiresValidation reports whether intent needs slot gating at all.
func RequiresValidation(intent models.Intent) bool {
	return intent.SideEffecting()
}

// Validate returns Ready for intents without side effects. For the others it
// reports the first missing field, then resolves the supplier.
func (v *Validator) Validate(ctx context.Context, tenantID string, intent models.Intent, slots models.SlotSet) Decision {
	if !RequiresValidation(intent) {
		return Decision{Status: StatusReady, Slots: slots}
	}
	log := logger.FromContext(ctx, v.log)

	for _, field := range requiredFields {
		if !slots.Has(field) {
			log.Debug("slot missing", map[string]interface{}{"intent": intent.String(), "field": string(field)})
			return Decision{Status: StatusMissingField, Field: field, Slots: slots}
		}
	}

	name := strings.TrimSpace(*slots.Supplier)
	if v.directory == nil {
		log.Warn("no supplier directory configured", map[string]interface{}{"supplier": name})
		return Decision{Status: StatusSupplierNotFound, Slots: slots}
	}

	supplier, err := v.directory.SupplierByName(ctx, tenantID, name)
	if err != nil {
		metrics.DataErrors.WithLabelValues("supplier_by_name").Inc()
		log.Warn("supplier lookup failed", map[string]interface{}{"supplier": name, "error": err.Error()})
		return Decision{Status: StatusSupplierNotFound, Slots: slots}
	}
	if supplier == nil || !supplier.HasContact() {
		log.Debug("supplier not reachable", map[string]interface{}{"supplier": name, "found": supplier != nil})
		return Decision{Status: StatusSupplierNotFound, Slots: slots}
	}

	return Decision{Status: StatusReady, Slots: slots, Supplier: supplier}
}
