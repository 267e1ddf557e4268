package looksrare

import (
	"context"
	"fmt"
)

// GetTopListingRewardsCollections returns the five collections currently
// ranked highest for listing rewards.
func (c *BasicClient) GetTopListingRewardsCollections(ctx context.Context) ([]CollectionRewards, error) {
	body, err := c.get(ctx, "GetTopListingRewardsCollections", "collections/listing-rewards", nil)
	if err != nil {
		return nil, err
	}

	rewards, err := decodeListingRewards(body)
	if err != nil {
		return nil, fmt.Errorf("error decoding response for GetTopListingRewardsCollections: %w", err)
	}

	return rewards, nil
}
