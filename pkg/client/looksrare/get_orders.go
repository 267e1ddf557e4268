package looksrare

import (
	"context"
	"fmt"
)

// GetOrders returns the orders matching req. No match yields an empty slice.
// Follow-up pages are requested by the caller with Pagination.Cursor set to
// the last hash of the previous page.
func (c *BasicClient) GetOrders(ctx context.Context, req *OrdersRequest) ([]Order, error) {
	if req == nil {
		req = &OrdersRequest{}
	}
	if err := validateRequest(ctx, "GetOrders", req); err != nil {
		return nil, err
	}

	query, err := req.Query()
	if err != nil {
		return nil, fmt.Errorf("error encoding query for GetOrders: %w", err)
	}

	body, err := c.get(ctx, "GetOrders", "orders", query)
	if err != nil {
		return nil, err
	}

	orders, err := decodeList[Order](body)
	if err != nil {
		return nil, fmt.Errorf("error decoding response for GetOrders: %w", err)
	}

	return orders, nil
}
