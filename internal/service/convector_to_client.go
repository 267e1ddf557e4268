package service

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

type ConvectorToClient struct{}

func NewConvectorToClient() *ConvectorToClient {
	return &ConvectorToClient{}
}

func (c *ConvectorToClient) ConvertToAddress(req *AddressRequest) common.Address {
	return common.HexToAddress(req.Address)
}

// ConvertToOrdersRequest expects req to be validated already.
func (c *ConvectorToClient) ConvertToOrdersRequest(req *OrdersRequest) (*looksrare.OrdersRequest, error) {
	out := &looksrare.OrdersRequest{
		IsOrderAsk: req.IsOrderAsk,
		Collection: toAddress(req.Collection),
		Signer:     toAddress(req.Signer),
		Strategy:   toAddress(req.Strategy),
		Currency:   toAddress(req.Currency),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}

	var err error
	if out.TokenID, err = toBigInt("tokenId", req.TokenID); err != nil {
		return nil, err
	}
	if out.Nonce, err = toBigInt("nonce", req.Nonce); err != nil {
		return nil, err
	}

	if req.MinPrice != "" || req.MaxPrice != "" {
		out.Price = &looksrare.Price{}
		if out.Price.Min, err = toBigInt("minPrice", req.MinPrice); err != nil {
			return nil, err
		}
		if out.Price.Max, err = toBigInt("maxPrice", req.MaxPrice); err != nil {
			return nil, err
		}
	}

	for _, s := range req.Status {
		status, err := looksrare.ParseStatus(s)
		if err != nil {
			return nil, err
		}
		out.Status = append(out.Status, status)
	}

	if req.First != nil || req.Cursor != "" {
		out.Pagination = &looksrare.Pagination{First: req.First}
		if req.Cursor != "" {
			cursor := req.Cursor
			out.Pagination.Cursor = &cursor
		}
	}

	if req.Sort != "" {
		sort, err := looksrare.ParseSort(req.Sort)
		if err != nil {
			return nil, err
		}
		out.Sort = &sort
	}

	return out, nil
}

// Support func`s toAddress & toBigInt.
func toAddress(s string) *common.Address {
	if s == "" {
		return nil
	}
	address := common.HexToAddress(s)
	return &address
}

func toBigInt(field, s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%s: %q is not a base-10 integer", field, s)
	}
	return v, nil
}
