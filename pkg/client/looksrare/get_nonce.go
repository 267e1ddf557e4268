package looksrare

import (
	"context"
	"fmt"
)

func (c *BasicClient) GetNonce(ctx context.Context, req *NonceRequest) (uint64, error) {
	if err := validateRequest(ctx, "GetNonce", req); err != nil {
		return 0, err
	}

	body, err := c.get(ctx, "GetNonce", "orders/nonce", addressQuery(req.Address))
	if err != nil {
		return 0, err
	}

	nonce, err := decodeNonce(body, req.Address)
	if err != nil {
		return 0, fmt.Errorf("error decoding response for GetNonce: %w", err)
	}

	return nonce, nil
}
