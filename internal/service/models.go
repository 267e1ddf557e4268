package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

type (
	AddressRequest struct {
		Address string `json:"address"`
	}

	NonceResponse struct {
		Address string `json:"address"`
		Nonce   uint64 `json:"nonce"`
	}
)

type (
	// OrdersRequest is the gateway form of looksrare.OrdersRequest; empty strings mean "not set".
	OrdersRequest struct {
		IsOrderAsk *bool    `json:"isOrderAsk"`
		Collection string   `json:"collection"`
		TokenID    string   `json:"tokenId"`
		Signer     string   `json:"signer"`
		Nonce      string   `json:"nonce"`
		Strategy   string   `json:"strategy"`
		Currency   string   `json:"currency"`
		MinPrice   string   `json:"minPrice"`
		MaxPrice   string   `json:"maxPrice"`
		StartTime  *uint64  `json:"startTime"`
		EndTime    *uint64  `json:"endTime"`
		Status     []string `json:"status"`
		First      *uint64  `json:"first"`
		Cursor     string   `json:"cursor"`
		Sort       string   `json:"sort"`
	}
)

type (
	CollectionOverview struct {
		Information *looksrare.CollectionInformation `json:"information"`
		Stats       *looksrare.CollectionStats       `json:"stats"`
	}
)

var errNotHexAddress = errors.New("must be a hex encoded address")

func hexAddress(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !common.IsHexAddress(s) {
		return errNotHexAddress
	}
	return nil
}

func knownStatus(value interface{}) error {
	s, _ := value.(string)
	if _, err := looksrare.ParseStatus(s); err != nil {
		return err
	}
	return nil
}

func knownSort(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := looksrare.ParseSort(s); err != nil {
		return err
	}
	return nil
}

func (r *AddressRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Address, validation.Required, validation.By(hexAddress)),
	)
}

func (r *OrdersRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Collection, validation.By(hexAddress)),
		validation.Field(&r.TokenID, is.Digit),
		validation.Field(&r.Signer, validation.By(hexAddress)),
		validation.Field(&r.Nonce, is.Digit),
		validation.Field(&r.Strategy, validation.By(hexAddress)),
		validation.Field(&r.Currency, validation.By(hexAddress)),
		validation.Field(&r.MinPrice, is.Digit),
		validation.Field(&r.MaxPrice, is.Digit),
		validation.Field(&r.Status, validation.Each(validation.By(knownStatus))),
		validation.Field(&r.Sort, validation.By(knownSort)),
	)
}

func invalidRequest(err error) error {
	return fmt.Errorf("%w: %w", looksrare.ErrInvalidRequest, err)
}
