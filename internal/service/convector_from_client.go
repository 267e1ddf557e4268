package service

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

type ConvectorFromClient struct{}

func NewConvectorFromClient() *ConvectorFromClient {
	return &ConvectorFromClient{}
}

func (c *ConvectorFromClient) ConvertFromNonce(address common.Address, nonce uint64) *NonceResponse {
	return &NonceResponse{
		Address: address.Hex(),
		Nonce:   nonce,
	}
}

func (c *ConvectorFromClient) ConvertFromCollection(
	info *looksrare.CollectionInformation,
	stats *looksrare.CollectionStats,
) *CollectionOverview {
	return &CollectionOverview{
		Information: info,
		Stats:       stats,
	}
}
