package service

import (
	"context"
	"net/http"

	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

func (s *Service) Health(
	_ context.Context,
	_ looksrare.HealthRequest,
) (*looksrare.HealthResponse, error) {
	return &looksrare.HealthResponse{
		Status: http.StatusOK,
	}, nil
}
