package capabilities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"voice-bridge/internal/store"

	"github.com/google/uuid"
)

const productSearchLimit = 5

type catalogToolset struct {
	catalog CatalogStore
}

type searchArgs struct {
	Query string `json:"query" validate:"required,max=100"`
}

type skuArgs struct {
	SKU string `json:"sku" validate:"required"`
}

type orderItemArgs struct {
	SKU      string `json:"sku" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=100"`
}

type orderArgs struct {
	Items        []orderItemArgs `json:"items" validate:"required,min=1,max=20,dive"`
	CustomerName string          `json:"customer_name" validate:"required"`
}

type orderStatusArgs struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
}

func catalogTools(catalog CatalogStore) []Tool {
	t := &catalogToolset{catalog: catalog}
	return []Tool{
		{
			Name:        "search_products",
			Description: "Search the product catalog by name, description or SKU.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{"type": "string"},
				},
				"required": []string{"query"},
			},
			Handler: t.searchProducts,
		},
		{
			Name:        "check_inventory",
			Description: "Check price and stock for a product SKU.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"sku": map[string]any{"type": "string"},
				},
				"required": []string{"sku"},
			},
			Handler: t.checkInventory,
		},
		{
			Name:        "create_order",
			Description: "Place an order for the caller after reading back the items and total.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"items": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"sku":      map[string]any{"type": "string"},
								"quantity": map[string]any{"type": "integer"},
							},
							"required": []string{"sku", "quantity"},
						},
					},
					"customer_name": map[string]any{"type": "string"},
				},
				"required": []string{"items", "customer_name"},
			},
			Handler: t.createOrder,
		},
		{
			Name:        "get_order_status",
			Description: "Look up the status of an existing order.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"order_id": map[string]any{"type": "string"},
				},
				"required": []string{"order_id"},
			},
			Handler: t.getOrderStatus,
		},
	}
}

func dollars(cents int64) float64 {
	return float64(cents) / 100
}

func (t *catalogToolset) searchProducts(ctx context.Context, call CallContext, raw json.RawMessage) (any, error) {
	args, err := decodeArgs[searchArgs](raw)
	if err != nil {
		return nil, err
	}

	products, err := t.catalog.SearchCatalogProducts(ctx, call.AccountID, args.Query, productSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}

	results := make([]map[string]any, 0, len(products))
	for _, p := range products {
		results = append(results, map[string]any{
			"sku":         p.SKU,
			"name":        p.Name,
			"description": p.Description,
			"price":       dollars(p.PriceCents),
			"in_stock":    p.Inventory > 0,
		})
	}
	return map[string]any{"count": len(results), "products": results}, nil
}

func (t *catalogToolset) checkInventory(ctx context.Context, call CallContext, raw json.RawMessage) (any, error) {
	args, err := decodeArgs[skuArgs](raw)
	if err != nil {
		return nil, err
	}

	product, err := t.catalog.GetCatalogProductBySKU(ctx, call.AccountID, args.SKU)
	if errors.Is(err, store.ErrNotFound) {
		return map[string]any{"found": false, "message": fmt.Sprintf("No product with SKU %s", args.SKU)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check inventory: %w", err)
	}
	return map[string]any{
		"found":     true,
		"sku":       product.SKU,
		"name":      product.Name,
		"price":     dollars(product.PriceCents),
		"inventory": product.Inventory,
		"available": product.Active && product.Inventory > 0,
	}, nil
}

func (t *catalogToolset) createOrder(ctx context.Context, call CallContext, raw json.RawMessage) (any, error) {
	args, err := decodeArgs[orderArgs](raw)
	if err != nil {
		return nil, err
	}

	lines := make([]store.OrderLine, 0, len(args.Items))
	for _, item := range args.Items {
		lines = append(lines, store.OrderLine{SKU: item.SKU, Quantity: item.Quantity})
	}

	order, err := t.catalog.CreateCatalogOrder(ctx, store.CreateCatalogOrderParams{
		AccountID:     call.AccountID,
		CallSid:       call.CallSid,
		CustomerName:  args.CustomerName,
		CustomerPhone: call.CallerNumber,
		Items:         lines,
	})
	switch {
	case errors.Is(err, store.ErrOutOfStock):
		return map[string]any{"success": false, "message": "One or more items are out of stock"}, nil
	case errors.Is(err, store.ErrNotFound):
		return map[string]any{"success": false, "message": "One or more SKUs are not in the catalog"}, nil
	case err != nil:
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return map[string]any{
		"success":  true,
		"order_id": order.ID.String(),
		"status":   order.Status,
		"total":    dollars(order.TotalCents),
	}, nil
}

func (t *catalogToolset) getOrderStatus(ctx context.Context, call CallContext, raw json.RawMessage) (any, error) {
	args, err := decodeArgs[orderStatusArgs](raw)
	if err != nil {
		return nil, err
	}
	orderID, err := uuid.Parse(args.OrderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	order, err := t.catalog.GetCatalogOrder(ctx, call.AccountID, orderID)
	if errors.Is(err, store.ErrNotFound) {
		return map[string]any{"found": false, "message": "No order with that number"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return map[string]any{
		"found":      true,
		"order_id":   order.ID.String(),
		"status":     order.Status,
		"total":      dollars(order.TotalCents),
		"item_count": len(order.Items),
		"placed_at":  order.CreatedAt.Format("2006-01-02 15:04"),
	}, nil
}
