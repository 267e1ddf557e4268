package looksrare

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errNilRequest       = errors.New("request is nil")
	errZeroAddress      = errors.New("must be a non-zero address")
	errNotPositive      = errors.New("must be positive")
	errEndBeforeStart   = errors.New("must not be before startTime")
	errMaxBelowMinPrice = errors.New("must not be below min")
)

func nonZeroAddress(value interface{}) error {
	address, _ := value.(common.Address)
	if address == (common.Address{}) {
		return errZeroAddress
	}
	return nil
}

func (r *AccountRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return errNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Address, validation.By(nonZeroAddress)),
	)
}

func (r *NonceRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return errNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Address, validation.By(nonZeroAddress)),
	)
}

func (r *CollectionRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return errNilRequest
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Address, validation.By(nonZeroAddress)),
	)
}

// ValidateWithContext accepts a nil request, which means no filters.
func (r *OrdersRequest) ValidateWithContext(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.EndTime, validation.By(func(value interface{}) error {
			end, _ := value.(*uint64)
			if end != nil && r.StartTime != nil && *end < *r.StartTime {
				return errEndBeforeStart
			}
			return nil
		})),
		validation.Field(&r.Price),
		validation.Field(&r.Pagination),
	)
}

func (p *Price) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, p,
		validation.Field(&p.Max, validation.By(func(value interface{}) error {
			maxPrice, _ := value.(*big.Int)
			if maxPrice != nil && p.Min != nil && maxPrice.Cmp(p.Min) < 0 {
				return errMaxBelowMinPrice
			}
			return nil
		})),
	)
}

func (p *Pagination) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, p,
		validation.Field(&p.First, validation.By(func(value interface{}) error {
			first, _ := value.(*uint64)
			if first != nil && *first == 0 {
				return errNotPositive
			}
			return nil
		})),
	)
}
