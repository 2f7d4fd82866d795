// internal/inventory/store.go

// Package inventory is the data-access collaborator of the assistant: the
// Postgres store of record, a Redis read-through cache and an Elasticsearch
// product search.
package inventory

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"time"

	apperrors "inventory-assistant/internal/common/errors"
	"inventory-assistant/internal/models"
)

// Store is everything the assistant reads. Single-record lookups return
// nil, nil when nothing matches.
type Store interface {
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
	SupplierByName(ctx context.Context, tenantID, name string) (*models.Supplier, error)
}

// DeadStockWindow is how long a product may go without stock movement before
// it counts as dead stock.
const DeadStockWindow = 30 * 24 * time.Hour

const lineColumns = `p.product_name, p.current_stock, COALESCE(p.unit, ''),
	p.min_stock_level, p.max_stock_level, p.expiry_date`

const (
	queryStockByName = `
		SELECT ` + lineColumns + `
		FROM products p
		WHERE p.business_id = $1 AND p.is_active = TRUE AND p.product_name ILIKE $2
		ORDER BY (LOWER(p.product_name) = LOWER($3)) DESC, p.product_name
		LIMIT 1`

	queryLowStock = `
		SELECT ` + lineColumns + `
		FROM products p
		WHERE p.business_id = $1 AND p.is_active = TRUE
		  AND p.min_stock_level IS NOT NULL AND p.current_stock <= p.min_stock_level
		ORDER BY p.current_stock ASC, p.product_name`

	queryDeadStock = `
		SELECT ` + lineColumns + `
		FROM products p
		WHERE p.business_id = $1 AND p.is_active = TRUE
		  AND NOT EXISTS (
		    SELECT 1 FROM stock_logs s
		    WHERE s.product_id = p.id AND s.created_at >= $2
		  )
		ORDER BY p.product_name`

	queryOverstocked = `
		SELECT ` + lineColumns + `
		FROM products p
		WHERE p.business_id = $1 AND p.is_active = TRUE
		  AND p.max_stock_level IS NOT NULL AND p.current_stock > p.max_stock_level
		ORDER BY p.current_stock DESC, p.product_name`

	queryExpiring = `
		SELECT ` + lineColumns + `
		FROM products p
		WHERE p.business_id = $1 AND p.is_active = TRUE
		  AND p.expiry_date IS NOT NULL AND p.expiry_date <= $2
		ORDER BY p.expiry_date ASC, p.product_name`

	queryByCategory = `
		SELECT ` + lineColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.business_id = $1 AND p.is_active = TRUE AND c.category_name ILIKE $2
		ORDER BY p.product_name`

	queryBySupplier = `
		SELECT ` + lineColumns + `
		FROM products p
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.business_id = $1 AND p.is_active = TRUE AND s.name ILIKE $2
		ORDER BY p.product_name`

	queryDetails = `
		SELECT p.product_name, COALESCE(p.sku, ''), COALESCE(p.barcode, ''), COALESCE(p.unit, ''),
		       COALESCE(c.category_name, ''), COALESCE(s.name, ''), COALESCE(p.description, ''),
		       p.current_stock, p.purchase_price, p.selling_price, p.expiry_date
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.business_id = $1 AND p.is_active = TRUE
		  AND (p.product_name ILIKE $2 OR p.sku ILIKE $2 OR p.barcode = $3)
		ORDER BY (LOWER(p.product_name) = LOWER($3)) DESC, p.product_name
		LIMIT 1`

	queryPricing = `
		SELECT p.product_name, COALESCE(p.unit, ''),
		       COALESCE(p.purchase_price, 0), COALESCE(p.selling_price, 0)
		FROM products p
		WHERE p.business_id = $1 AND p.is_active = TRUE AND p.product_name ILIKE $2
		ORDER BY (LOWER(p.product_name) = LOWER($3)) DESC, p.product_name
		LIMIT 1`

	querySummary = `
		SELECT COUNT(*),
		       COALESCE(SUM(current_stock), 0),
		       COALESCE(SUM(current_stock * COALESCE(purchase_price, 0)), 0),
		       COALESCE(SUM(current_stock * COALESCE(selling_price, 0)), 0)
		FROM products
		WHERE business_id = $1 AND is_active = TRUE`

	queryTopSeller = `
		SELECT p.product_name, SUM(s.quantity) AS total_sold, COALESCE(p.unit, '')
		FROM stock_logs s
		JOIN products p ON p.id = s.product_id
		WHERE p.business_id = $1 AND s.quantity > 0
		GROUP BY p.product_name, p.unit
		ORDER BY total_sold DESC, p.product_name
		LIMIT 1`

	querySupplier = `
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, '')
		FROM suppliers
		WHERE business_id = $1 AND name ILIKE $2
		ORDER BY (LOWER(name) = LOWER($3)) DESC, name
		LIMIT 1`
)

// PostgresStore reads the store of record through database/sql.
type PostgresStore struct {
	db      *sql.DB
	timeout time.Duration
	now     func() time.Time
}

func NewPostgresStore(db *sql.DB, queryTimeout time.Duration) *PostgresStore {
	return &PostgresStore{db: db, timeout: queryTimeout, now: time.Now}
}

func (s *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *PostgresStore) StockByName(ctx context.Context, tenantID, name string) (*models.ProductLine, error) {
	lines, err := s.lines(ctx, "stock_by_name", queryStockByName, tenantID, contains(name), name)
	if err != nil || len(lines) == 0 {
		return nil, err
	}
	return &lines[0], nil
}

func (s *PostgresStore) LowStock(ctx context.Context, tenantID string) ([]models.ProductLine, error) {
	return s.lines(ctx, "low_stock", queryLowStock, tenantID)
}

func (s *PostgresStore) DeadStock(ctx context.Context, tenantID string) ([]models.ProductLine, error) {
	return s.lines(ctx, "dead_stock", queryDeadStock, tenantID, s.now().Add(-DeadStockWindow))
}

func (s *PostgresStore) OverstockedProducts(ctx context.Context, tenantID string) ([]models.ProductLine, error) {
	return s.lines(ctx, "overstocked_products", queryOverstocked, tenantID)
}

func (s *PostgresStore) ExpiringProducts(ctx context.Context, tenantID string, days int) ([]models.ProductLine, error) {
	until := s.now().AddDate(0, 0, days).Format("2006-01-02")
	return s.lines(ctx, "expiring_products", queryExpiring, tenantID, until)
}

func (s *PostgresStore) ProductsByCategory(ctx context.Context, tenantID, category string) ([]models.ProductLine, error) {
	return s.lines(ctx, "products_by_category", queryByCategory, tenantID, contains(category))
}

func (s *PostgresStore) ProductsBySupplier(ctx context.Context, tenantID, supplier string) ([]models.ProductLine, error) {
	return s.lines(ctx, "products_by_supplier", queryBySupplier, tenantID, contains(supplier))
}

func (s *PostgresStore) ProductDetails(ctx context.Context, tenantID, name string) (*models.ProductDetail, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		d                 models.ProductDetail
		purchase, selling sql.NullFloat64
		expiry            sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, queryDetails, tenantID, contains(name), name).Scan(
		&d.ProductName, &d.SKU, &d.Barcode, &d.Unit,
		&d.Category, &d.Supplier, &d.Description,
		&d.CurrentStock, &purchase, &selling, &expiry,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewDataUnavailableError("product_details", err)
	}
	d.PurchasePrice = nullFloat(purchase)
	d.SellingPrice = nullFloat(selling)
	d.ExpiryDate = nullTime(expiry)
	return &d, nil
}

func (s *PostgresStore) ProductPricing(ctx context.Context, tenantID, name string) (*models.PriceRecord, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var p models.PriceRecord
	err := s.db.QueryRowContext(ctx, queryPricing, tenantID, contains(name), name).Scan(
		&p.ProductName, &p.Unit, &p.PurchasePrice, &p.SellingPrice,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewDataUnavailableError("product_pricing", err)
	}
	p.ProfitMargin = ProfitMargin(p.PurchasePrice, p.SellingPrice)
	return &p, nil
}

func (s *PostgresStore) InventorySummary(ctx context.Context, tenantID string) (*models.InventorySummary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var sum models.InventorySummary
	err := s.db.QueryRowContext(ctx, querySummary, tenantID).Scan(
		&sum.TotalProducts, &sum.TotalStock, &sum.TotalValue, &sum.TotalSellingValue,
	)
	if err != nil {
		return nil, apperrors.NewDataUnavailableError("inventory_summary", err)
	}
	sum.PotentialProfit = sum.TotalSellingValue - sum.TotalValue
	return &sum, nil
}

func (s *PostgresStore) TopSellingProduct(ctx context.Context, tenantID string) (*models.TopSeller, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var top models.TopSeller
	err := s.db.QueryRowContext(ctx, queryTopSeller, tenantID).Scan(&top.ProductName, &top.TotalSold, &top.Unit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewDataUnavailableError("top_selling_product", err)
	}
	return &top, nil
}

// SupplierByName satisfies the validator's supplier directory.
func (s *PostgresStore) SupplierByName(ctx context.Context, tenantID, name string) (*models.Supplier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var sup models.Supplier
	err := s.db.QueryRowContext(ctx, querySupplier, tenantID, contains(name), name).Scan(
		&sup.ID, &sup.Name, &sup.Email, &sup.Phone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewDataUnavailableError("supplier_by_name", err)
	}
	return &sup, nil
}

func (s *PostgresStore) lines(ctx context.Context, op, query string, args ...interface{}) ([]models.ProductLine, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewDataUnavailableError(op, err)
	}
	defer rows.Close()

	var out []models.ProductLine
	for rows.Next() {
		var (
			l        models.ProductLine
			minLevel, maxLevel sql.NullFloat64
			expiry   sql.NullTime
		)
		if err := rows.Scan(&l.ProductName, &l.CurrentStock, &l.Unit, &minLevel, &maxLevel, &expiry); err != nil {
			return nil, apperrors.NewDataUnavailableError(op, err)
		}
		l.MinStockLevel = nullFloat(minLevel)
		l.MaxStockLevel = nullFloat(maxLevel)
		l.ExpiryDate = nullTime(expiry)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDataUnavailableError(op, err)
	}
	return out, nil
}

// ProfitMargin is (selling - purchase) / purchase as a percentage rounded to
// two decimals, or nil when the purchase price is not positive.
func ProfitMargin(purchase, selling float64) *float64 {
	if purchase <= 0 {
		return nil
	}
	m := math.Round((selling-purchase)/purchase*100*100) / 100
	return &m
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains builds an ILIKE pattern matching s anywhere.
func contains(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
