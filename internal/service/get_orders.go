package service

import (
	"context"
	"log/slog"

	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

func (s *Service) GetOrders(
	ctx context.Context,
	req *OrdersRequest,
) ([]looksrare.Order, error) {
	s.logger.InfoContext(ctx, "GetOrders", slog.Any("req", req))
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, invalidRequest(err)
	}

	clientReq, err := s.convectorToClient.ConvertToOrdersRequest(req)
	if err != nil {
		return nil, invalidRequest(err)
	}

	orders, err := s.client.GetOrders(ctx, clientReq)
	if err != nil {
		s.logger.ErrorContext(ctx, "service client.GetOrders", slog.Any("error", err))
		return nil, err
	}

	return orders, nil
}
