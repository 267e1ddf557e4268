package service

import (
	"context"
	"log/slog"

	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

type LooksRareService interface {
	GetAccount(ctx context.Context, req *AddressRequest) (*looksrare.Account, error)
	GetNonce(ctx context.Context, req *AddressRequest) (*NonceResponse, error)
	GetOrders(ctx context.Context, req *OrdersRequest) ([]looksrare.Order, error)
	GetCollectionInformation(ctx context.Context, req *AddressRequest) (*looksrare.CollectionInformation, error)
	GetCollectionStats(ctx context.Context, req *AddressRequest) (*looksrare.CollectionStats, error)
	GetCollectionOverview(ctx context.Context, req *AddressRequest) (*CollectionOverview, error)
	GetTopListingRewardsCollections(ctx context.Context) ([]looksrare.CollectionRewards, error)
	Health(ctx context.Context, req looksrare.HealthRequest) (*looksrare.HealthResponse, error)
}

type Service struct {
	logger              *slog.Logger
	client              looksrare.Client
	convectorToClient   *ConvectorToClient
	convectorFromClient *ConvectorFromClient
}

func NewLooksRareService(_ context.Context, log *slog.Logger, client looksrare.Client) *Service {
	return &Service{
		logger:              log,
		client:              client,
		convectorToClient:   NewConvectorToClient(),
		convectorFromClient: NewConvectorFromClient(),
	}
}
