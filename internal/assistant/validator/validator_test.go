// internal/assistant/validator/validator_test.go
package validator

import (
	"context"
	"errors"
	"testing"

	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) SupplierByName(ctx context.Context, tenantID, name string) (*models.Supplier, error) {
	args := m.Called(ctx, tenantID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func demandSlots(product, supplier string, qty float64) models.SlotSet {
	var s models.SlotSet
	if product != "" {
		s.Product = models.StringPtr(product)
	}
	if supplier != "" {
		s.Supplier = models.StringPtr(supplier)
	}
	if qty > 0 {
		s.Quantity = &models.Quantity{Amount: qty, Unit: "kg"}
	}
	return s
}

func TestValidate_NonSideEffectingIsReady(t *testing.T) {
	dir := new(MockDirectory)
	v := New(dir, logger.NewTestLogger(t))

	for _, intent := range models.AllIntents() {
		if intent == models.IntentSupplierDemand {
			continue
		}
		d := v.Validate(context.Background(), "t1", intent, models.SlotSet{})
		assert.True(t, d.Ready(), intent.String())
		assert.Nil(t, d.Supplier)
	}
	dir.AssertNotCalled(t, "SupplierByName", mock.Anything, mock.Anything, mock.Anything)
}

func TestValidate_FieldOrder(t *testing.T) {
	tests := []struct {
		name  string
		slots models.SlotSet
		want  models.SlotField
	}{
		{"nothing", models.SlotSet{}, models.FieldSupplier},
		{"product and quantity only", demandSlots("rice", "", 10), models.FieldSupplier},
		{"supplier only", demandSlots("", "Ram Traders", 0), models.FieldProduct},
		{"supplier and quantity", demandSlots("", "Ram Traders", 10), models.FieldProduct},
		{"quantity missing", demandSlots("rice", "Ram Traders", 0), models.FieldQuantity},
		{"zero quantity", models.SlotSet{
			Product:  models.StringPtr("rice"),
			Supplier: models.StringPtr("Ram Traders"),
			Quantity: &models.Quantity{Amount: 0},
		}, models.FieldQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := new(MockDirectory)
			v := New(dir, logger.NewTestLogger(t))

			d := v.Validate(context.Background(), "t1", models.IntentSupplierDemand, tt.slots)
			assert.Equal(t, StatusMissingField, d.Status)
			assert.Equal(t, tt.want, d.Field)
			dir.AssertNotCalled(t, "SupplierByName", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestValidate_SupplierResolution(t *testing.T) {
	ctx := context.Background()
	slots := demandSlots("rice", " Ram Traders ", 10)

	t.Run("found with email", func(t *testing.T) {
		dir := new(MockDirectory)
		supplier := &models.Supplier{ID: "s1", Name: "Ram Traders", Email: "ram@example.com"}
		dir.On("SupplierByName", ctx, "t1", "Ram Traders").Return(supplier, nil)

		d := New(dir, nil).Validate(ctx, "t1", models.IntentSupplierDemand, slots)
		require.True(t, d.Ready())
		assert.Equal(t, supplier, d.Supplier)
		dir.AssertExpectations(t)
	})

	t.Run("unknown", func(t *testing.T) {
		dir := new(MockDirectory)
		dir.On("SupplierByName", ctx, "t1", "Ram Traders").Return(nil, nil)

		d := New(dir, nil).Validate(ctx, "t1", models.IntentSupplierDemand, slots)
		assert.Equal(t, StatusSupplierNotFound, d.Status)
		assert.Nil(t, d.Supplier)
	})

	t.Run("no contact channel", func(t *testing.T) {
		dir := new(MockDirectory)
		dir.On("SupplierByName", ctx, "t1", "Ram Traders").Return(&models.Supplier{ID: "s1", Name: "Ram Traders"}, nil)

		d := New(dir, nil).Validate(ctx, "t1", models.IntentSupplierDemand, slots)
		assert.Equal(t, StatusSupplierNotFound, d.Status)
	})

	t.Run("lookup error", func(t *testing.T) {
		dir := new(MockDirectory)
		dir.On("SupplierByName", ctx, "t1", "Ram Traders").Return(nil, errors.New("connection refused"))

		d := New(dir, nil).Validate(ctx, "t1", models.IntentSupplierDemand, slots)
		assert.Equal(t, StatusSupplierNotFound, d.Status)
	})

	t.Run("no directory", func(t *testing.T) {
		d := New(nil, nil).Validate(ctx, "t1", models.IntentSupplierDemand, slots)
		assert.Equal(t, StatusSupplierNotFound, d.Status)
	})
}

func TestRequiresValidation(t *testing.T) {
	assert.True(t, RequiresValidation(models.IntentSupplierDemand))
	assert.False(t, RequiresValidation(models.IntentStockQuery))
	assert.False(t, RequiresValidation(models.IntentUnknown))
}
