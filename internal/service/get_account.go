package service

import (
	"context"
	"log/slog"

	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

func (s *Service) GetAccount(
	ctx context.Context,
	req *AddressRequest,
) (*looksrare.Account, error) {
	s.logger.InfoContext(ctx, "GetAccount", slog.Any("req", req))
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, invalidRequest(err)
	}

	clientReq := &looksrare.AccountRequest{Address: s.convectorToClient.ConvertToAddress(req)}

	account, err := s.client.GetAccount(ctx, clientReq)
	if err != nil {
		s.logger.ErrorContext(ctx, "service client.GetAccount", slog.Any("error", err))
		return nil, err
	}

	return account, nil
}

func (s *Service) GetNonce(
	ctx context.Context,
	req *AddressRequest,
) (*NonceResponse, error) {
	s.logger.InfoContext(ctx, "GetNonce", slog.Any("req", req))
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, invalidRequest(err)
	}

	address := s.convectorToClient.ConvertToAddress(req)

	nonce, err := s.client.GetNonce(ctx, &looksrare.NonceRequest{Address: address})
	if err != nil {
		s.logger.ErrorContext(ctx, "service client.GetNonce", slog.Any("error", err))
		return nil, err
	}

	return s.convectorFromClient.ConvertFromNonce(address, nonce), nil
}
