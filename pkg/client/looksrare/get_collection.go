package looksrare

import (
	"context"
	"fmt"
)

func (c *BasicClient) GetCollectionInformation(
	ctx context.Context,
	req *CollectionRequest,
) (*CollectionInformation, error) {
	if err := validateRequest(ctx, "GetCollectionInformation", req); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "GetCollectionInformation", "collections", addressQuery(req.Address))
	if err != nil {
		return nil, err
	}

	info, err := decodeLookup[CollectionInformation](body, ResourceCollection, req.Address)
	if err != nil {
		return nil, fmt.Errorf("error decoding response for GetCollectionInformation: %w", err)
	}

	return info, nil
}

func (c *BasicClient) GetCollectionStats(
	ctx context.Context,
	req *CollectionRequest,
) (*CollectionStats, error) {
	if err := validateRequest(ctx, "GetCollectionStats", req); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "GetCollectionStats", "collections/stats", addressQuery(req.Address))
	if err != nil {
		return nil, err
	}

	stats, err := decodeLookup[CollectionStats](body, ResourceCollectionStats, req.Address)
	if err != nil {
		return nil, fmt.Errorf("error decoding response for GetCollectionStats: %w", err)
	}

	return stats, nil
}
