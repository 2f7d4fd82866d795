// internal/inventory/search.go
package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// productDocument is the indexed form of an active product.
type productDocument struct {
	BusinessID    string   `json:"business_id"`
	ProductName   string   `json:"product_name"`
	SKU           string   `json:"sku"`
	Barcode       string   `json:"barcode"`
	Unit          string   `json:"unit"`
	Category      string   `json:"category"`
	Supplier      string   `json:"supplier"`
	Description   string   `json:"description"`
	CurrentStock  float64  `json:"current_stock"`
	PurchasePrice *float64 `json:"purchase_price"`
	SellingPrice  *float64 `json:"selling_price"`
	ExpiryDate    string   `json:"expiry_date"`
	IsActive      bool     `json:"is_active"`
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source productDocument `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// SearchStore answers ProductDetails with a fuzzy Elasticsearch match, so
// misspelled names and SKUs still resolve. A search error or miss falls
// through to the wrapped Store.
type SearchStore struct {
	Store
	client *elasticsearch.Client
	index  string
	log    logger.Logger
}

func NewSearchStore(next Store, client *elasticsearch.Client, index string, log logger.Logger) *SearchStore {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &SearchStore{
		Store:  next,
		client: client,
		index:  index,
		log:    log.With(map[string]interface{}{"component": "product_search"}),
	}
}

func (s *SearchStore) ProductDetails(ctx context.Context, tenantID, name string) (*models.ProductDetail, error) {
	detail, err := s.search(ctx, tenantID, name)
	if err != nil {
		s.log.Warn("product search failed, using store", map[string]interface{}{
			"product": name,
			"error":   err.Error(),
		})
	}
	if detail != nil {
		return detail, nil
	}
	return s.Store.ProductDetails(ctx, tenantID, name)
}

func (s *SearchStore) search(ctx context.Context, tenantID, name string) (*models.ProductDetail, error) {
	body, err := json.Marshal(buildProductQuery(tenantID, name))
	if err != nil {
		return nil, err
	}
	size := 1
	req := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  bytes.NewReader(body),
		Size:  &size,
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search query failed: %s", res.Status())
	}

	var r searchResponse
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if len(r.Hits.Hits) == 0 {
		return nil, nil
	}
	return r.Hits.Hits[0].Source.detail(), nil
}

func buildProductQuery(tenantID, name string) map[string]interface{} {
	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{
					map[string]interface{}{
						"multi_match": map[string]interface{}{
							"query":     name,
							"fields":    []string{"product_name^3", "sku", "barcode"},
							"fuzziness": "AUTO",
						},
					},
				},
				"filter": []interface{}{
					map[string]interface{}{"term": map[string]interface{}{"business_id": tenantID}},
					map[string]interface{}{"term": map[string]interface{}{"is_active": true}},
				},
			},
		},
	}
}

func (d productDocument) detail() *models.ProductDetail {
	out := &models.ProductDetail{
		ProductName:   d.ProductName,
		SKU:           d.SKU,
		Barcode:       d.Barcode,
		Unit:          d.Unit,
		Category:      d.Category,
		Supplier:      d.Supplier,
		Description:   d.Description,
		CurrentStock:  d.CurrentStock,
		PurchasePrice: d.PurchasePrice,
		SellingPrice:  d.SellingPrice,
	}
	if t, err := time.Parse("2006-01-02", d.ExpiryDate); err == nil {
		out.ExpiryDate = &t
	}
	return out
}
