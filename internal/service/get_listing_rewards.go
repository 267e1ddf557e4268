package service

import (
	"context"
	"log/slog"

	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

func (s *Service) GetTopListingRewardsCollections(ctx context.Context) ([]looksrare.CollectionRewards, error) {
	s.logger.InfoContext(ctx, "GetTopListingRewardsCollections")

	rewards, err := s.client.GetTopListingRewardsCollections(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "service client.GetTopListingRewardsCollections", slog.Any("error", err))
		return nil, err
	}

	return rewards, nil
}
