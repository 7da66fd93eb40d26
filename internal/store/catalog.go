package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrOutOfStock = errors.New("out of stock")

// CatalogProduct is an item an agent can quote and sell over the phone
type CatalogProduct struct {
	ID          uuid.UUID `db:"id"`
	AccountID   uuid.UUID `db:"account_id"`
	SKU         string    `db:"sku"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	PriceCents  int64     `db:"price_cents"`
	Inventory   int       `db:"inventory"`
	Active      bool      `db:"active"`
}

// CatalogOrder is an order placed during a call
type CatalogOrder struct {
	ID            uuid.UUID          `db:"id"`
	AccountID     uuid.UUID          `db:"account_id"`
	CallSid       string             `db:"call_sid"`
	CustomerName  string             `db:"customer_name"`
	CustomerPhone string             `db:"customer_phone"`
	Status        string             `db:"status"`
	TotalCents    int64              `db:"total_cents"`
	CreatedAt     time.Time          `db:"created_at"`
	Items         []CatalogOrderItem `db:"-"`
}

// CatalogOrderItem is one line of a catalog order
type CatalogOrderItem struct {
	OrderID        uuid.UUID `db:"order_id"`
	SKU            string    `db:"sku"`
	Name           string    `db:"name"`
	Quantity       int       `db:"quantity"`
	UnitPriceCents int64     `db:"unit_price_cents"`
}

// CreateCatalogOrderParams describes an order request
type CreateCatalogOrderParams struct {
	AccountID     uuid.UUID
	CallSid       string
	CustomerName  string
	CustomerPhone string
	Items         []OrderLine
}

// OrderLine is a requested SKU and quantity
type OrderLine struct {
	SKU      string
	Quantity int
}

const catalogProductColumns = `id, account_id, sku, name, description, price_cents, inventory, active`

const sqlSearchCatalogProducts = `
SELECT ` + catalogProductColumns + `
FROM catalog_products
WHERE account_id = $1 AND active = TRUE
  AND (name ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%' OR sku = $2)
ORDER BY name
LIMIT $3
`

// SearchCatalogProducts finds active products whose name, description or SKU match the query
func (s *Store) SearchCatalogProducts(ctx context.Context, accountID uuid.UUID, query string, limit int) ([]CatalogProduct, error) {
	var products []CatalogProduct
	err := s.db.SelectContext(ctx, &products, sqlSearchCatalogProducts, accountID, query, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to search catalog products", err)
		return nil, fmt.Errorf("failed to search catalog products: %w", err)
	}
	return products, nil
}

const sqlGetCatalogProductBySKU = `
SELECT ` + catalogProductColumns + `
FROM catalog_products
WHERE account_id = $1 AND sku = $2 AND active = TRUE
`

// GetCatalogProductBySKU retrieves an active product by SKU
func (s *Store) GetCatalogProductBySKU(ctx context.Context, accountID uuid.UUID, sku string) (CatalogProduct, error) {
	var product CatalogProduct
	err := s.db.GetContext(ctx, &product, sqlGetCatalogProductBySKU, accountID, sku)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CatalogProduct{}, ErrNotFound
		}
		return CatalogProduct{}, fmt.Errorf("failed to get catalog product: %w", err)
	}
	return product, nil
}

const sqlReserveInventory = `
UPDATE catalog_products
SET inventory = inventory - $3
WHERE account_id = $1 AND sku = $2 AND active = TRUE AND inventory >= $3
RETURNING ` + catalogProductColumns + `
`

const sqlInsertCatalogOrder = `
INSERT INTO catalog_orders (account_id, call_sid, customer_name, customer_phone, status, total_cents)
VALUES ($1, $2, $3, $4, 'pending', $5)
RETURNING id, account_id, call_sid, customer_name, customer_phone, status, total_cents, created_at
`

const sqlInsertCatalogOrderItem = `
INSERT INTO catalog_order_items (order_id, sku, name, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4, $5)
`

// CreateCatalogOrder reserves inventory for every line and records the order.
// Any line that cannot be fulfilled aborts the whole order with ErrOutOfStock.
func (s *Store) CreateCatalogOrder(ctx context.Context, params CreateCatalogOrderParams) (CatalogOrder, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return CatalogOrder{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.rollback(ctx, tx)

	items := make([]CatalogOrderItem, 0, len(params.Items))
	var total int64
	for _, line := range params.Items {
		var product CatalogProduct
		err = tx.GetContext(ctx, &product, sqlReserveInventory, params.AccountID, line.SKU, line.Quantity)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return CatalogOrder{}, fmt.Errorf("%s: %w", line.SKU, ErrOutOfStock)
			}
			s.logger.Error(ctx, "failed to reserve inventory", err)
			return CatalogOrder{}, fmt.Errorf("failed to reserve inventory: %w", err)
		}
		items = append(items, CatalogOrderItem{
			SKU:            product.SKU,
			Name:           product.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: product.PriceCents,
		})
		total += product.PriceCents * int64(line.Quantity)
	}

	var order CatalogOrder
	err = tx.GetContext(ctx, &order, sqlInsertCatalogOrder,
		params.AccountID,
		params.CallSid,
		params.CustomerName,
		params.CustomerPhone,
		total,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to insert catalog order", err)
		return CatalogOrder{}, fmt.Errorf("failed to insert catalog order: %w", err)
	}

	for i := range items {
		items[i].OrderID = order.ID
		_, err = tx.ExecContext(ctx, sqlInsertCatalogOrderItem,
			order.ID, items[i].SKU, items[i].Name, items[i].Quantity, items[i].UnitPriceCents)
		if err != nil {
			s.logger.Error(ctx, "failed to insert catalog order item", err)
			return CatalogOrder{}, fmt.Errorf("failed to insert catalog order item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return CatalogOrder{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	order.Items = items
	return order, nil
}

const sqlGetCatalogOrder = `
SELECT id, account_id, call_sid, customer_name, customer_phone, status, total_cents, created_at
FROM catalog_orders
WHERE account_id = $1 AND id = $2
`

const sqlGetCatalogOrderItems = `
SELECT order_id, sku, name, quantity, unit_price_cents
FROM catalog_order_items
WHERE order_id = $1
`

// GetCatalogOrder retrieves an order with its lines, scoped to the account
func (s *Store) GetCatalogOrder(ctx context.Context, accountID, orderID uuid.UUID) (CatalogOrder, error) {
	var order CatalogOrder
	err := s.db.GetContext(ctx, &order, sqlGetCatalogOrder, accountID, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CatalogOrder{}, ErrNotFound
		}
		return CatalogOrder{}, fmt.Errorf("failed to get catalog order: %w", err)
	}

	err = s.db.SelectContext(ctx, &order.Items, sqlGetCatalogOrderItems, order.ID)
	if err != nil {
		return CatalogOrder{}, fmt.Errorf("failed to get catalog order items: %w", err)
	}
	return order, nil
}
