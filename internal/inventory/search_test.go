// internal/inventory/search_test.go
package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-assistant/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createSearchServer(t *testing.T, status int, body string, captured *map[string]interface{}) *elasticsearch.Client {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil && r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(captured)
		}
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return client
}

func TestSearchStore_Hit(t *testing.T) {
	var query map[string]interface{}
	client := createSearchServer(t, http.StatusOK, `{
		"hits": {"total": {"value": 1}, "hits": [{"_source": {
			"business_id": "t1", "product_name": "Basmati Rice", "sku": "RC-01", "unit": "kg",
			"category": "grains", "supplier": "Ram Traders", "current_stock": 40,
			"purchase_price": 40, "selling_price": 50, "expiry_date": "2026-12-01", "is_active": true
		}}]}
	}`, &query)

	next := new(MockStore)
	store := NewSearchStore(next, client, "products", nil)

	d, err := store.ProductDetails(context.Background(), "t1", "basmatti")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Basmati Rice", d.ProductName)
	assert.Equal(t, 40.0, d.CurrentStock)
	require.NotNil(t, d.SellingPrice)
	assert.Equal(t, 50.0, *d.SellingPrice)
	require.NotNil(t, d.ExpiryDate)
	assert.Equal(t, "2026-12-01", d.ExpiryDate.Format("2006-01-02"))
	next.AssertNotCalled(t, "ProductDetails", mock.Anything, mock.Anything, mock.Anything)

	boolQuery := query["query"].(map[string]interface{})["bool"].(map[string]interface{})
	filters := boolQuery["filter"].([]interface{})
	assert.Len(t, filters, 2)
	match := boolQuery["must"].([]interface{})[0].(map[string]interface{})["multi_match"].(map[string]interface{})
	assert.Equal(t, "basmatti", match["query"])
	assert.Equal(t, "AUTO", match["fuzziness"])
}

func TestSearchStore_FallsBackToStore(t *testing.T) {
	fromStore := &models.ProductDetail{ProductName: "Rice", Unit: "kg", CurrentStock: 40}

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "no hits", status: http.StatusOK, body: `{"hits": {"total": {"value": 0}, "hits": []}}`},
		{name: "index missing", status: http.StatusNotFound, body: `{"error": {"type": "index_not_found_exception"}}`},
		{name: "garbage reply", status: http.StatusOK, body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := createSearchServer(t, tt.status, tt.body, nil)
			next := new(MockStore)
			next.On("ProductDetails", mock.Anything, "t1", "rice").Return(fromStore, nil).Once()

			store := NewSearchStore(next, client, "products", nil)
			d, err := store.ProductDetails(context.Background(), "t1", "rice")

			require.NoError(t, err)
			assert.Equal(t, fromStore, d)
			next.AssertExpectations(t)
		})
	}
}
