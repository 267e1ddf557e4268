package looksrare

import (
	"context"
	"fmt"
)

func (c *BasicClient) GetAccount(ctx context.Context, req *AccountRequest) (*Account, error) {
	if err := validateRequest(ctx, "GetAccount", req); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "GetAccount", "accounts", addressQuery(req.Address))
	if err != nil {
		return nil, err
	}

	account, err := decodeLookup[Account](body, ResourceAccount, req.Address)
	if err != nil {
		return nil, fmt.Errorf("error decoding response for GetAccount: %w", err)
	}

	return account, nil
}
