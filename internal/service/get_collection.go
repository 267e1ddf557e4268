package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

func (s *Service) GetCollectionInformation(
	ctx context.Context,
	req *AddressRequest,
) (*looksrare.CollectionInformation, error) {
	s.logger.InfoContext(ctx, "GetCollectionInformation", slog.Any("req", req))
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, invalidRequest(err)
	}

	clientReq := &looksrare.CollectionRequest{Address: s.convectorToClient.ConvertToAddress(req)}

	info, err := s.client.GetCollectionInformation(ctx, clientReq)
	if err != nil {
		s.logger.ErrorContext(ctx, "service client.GetCollectionInformation", slog.Any("error", err))
		return nil, err
	}

	return info, nil
}

func (s *Service) GetCollectionStats(
	ctx context.Context,
	req *AddressRequest,
) (*looksrare.CollectionStats, error) {
	s.logger.InfoContext(ctx, "GetCollectionStats", slog.Any("req", req))
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, invalidRequest(err)
	}

	clientReq := &looksrare.CollectionRequest{Address: s.convectorToClient.ConvertToAddress(req)}

	stats, err := s.client.GetCollectionStats(ctx, clientReq)
	if err != nil {
		s.logger.ErrorContext(ctx, "service client.GetCollectionStats", slog.Any("error", err))
		return nil, err
	}

	return stats, nil
}

// GetCollectionOverview fetches information and stats concurrently. The
// information error wins when both lookups fail.
func (s *Service) GetCollectionOverview(
	ctx context.Context,
	req *AddressRequest,
) (*CollectionOverview, error) {
	s.logger.InfoContext(ctx, "GetCollectionOverview", slog.Any("req", req))
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, invalidRequest(err)
	}

	clientReq := &looksrare.CollectionRequest{Address: s.convectorToClient.ConvertToAddress(req)}

	var (
		wg       sync.WaitGroup
		info     *looksrare.CollectionInformation
		stats    *looksrare.CollectionStats
		infoErr  error
		statsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		info, infoErr = s.client.GetCollectionInformation(ctx, clientReq)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = s.client.GetCollectionStats(ctx, clientReq)
	}()
	wg.Wait()

	for _, err := range []error{infoErr, statsErr} {
		if err != nil {
			s.logger.ErrorContext(ctx, "service GetCollectionOverview", slog.Any("error", err))
			return nil, err
		}
	}

	return s.convectorFromClient.ConvertFromCollection(info, stats), nil
}
