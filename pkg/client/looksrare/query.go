package looksrare

import (
	"fmt"
	"math/big"
	"net/url"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// QueryParam is a single key/value pair of a request query string.
type QueryParam struct {
	Key   string
	Value string
}

// Query keeps its pairs in insertion order; url.Values would sort them by key.
type Query []QueryParam

func (q Query) Encode() string {
	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// Get returns every value stored under key, in order.
func (q Query) Get(key string) []string {
	var values []string
	for _, p := range q {
		if p.Key == key {
			values = append(values, p.Value)
		}
	}
	return values
}

// queryRule renders one request field into zero or more values for key.
type queryRule struct {
	key    string
	values func(r *OrdersRequest) ([]string, error)
}

var ordersQueryRules = []queryRule{
	{"isOrderAsk", func(r *OrdersRequest) ([]string, error) { return boolValue(r.IsOrderAsk), nil }},
	{"collection", func(r *OrdersRequest) ([]string, error) { return addressValue(r.Collection), nil }},
	{"tokenId", func(r *OrdersRequest) ([]string, error) { return bigIntValue("tokenId", r.TokenID) }},
	{"signer", func(r *OrdersRequest) ([]string, error) { return addressValue(r.Signer), nil }},
	{"nonce", func(r *OrdersRequest) ([]string, error) { return bigIntValue("nonce", r.Nonce) }},
	{"strategy", func(r *OrdersRequest) ([]string, error) { return addressValue(r.Strategy), nil }},
	{"currency", func(r *OrdersRequest) ([]string, error) { return addressValue(r.Currency), nil }},
	{"price[min]", func(r *OrdersRequest) ([]string, error) {
		if r.Price == nil {
			return nil, nil
		}
		return bigIntValue("price[min]", r.Price.Min)
	}},
	{"price[max]", func(r *OrdersRequest) ([]string, error) {
		if r.Price == nil {
			return nil, nil
		}
		return bigIntValue("price[max]", r.Price.Max)
	}},
	{"startTime", func(r *OrdersRequest) ([]string, error) { return uintValue(r.StartTime), nil }},
	{"endTime", func(r *OrdersRequest) ([]string, error) { return uintValue(r.EndTime), nil }},
	{"status[]", func(r *OrdersRequest) ([]string, error) {
		values := make([]string, 0, len(r.Status))
		for _, s := range r.Status {
			v, err := s.wireValue()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	}},
	{"pagination[first]", func(r *OrdersRequest) ([]string, error) {
		if r.Pagination == nil {
			return nil, nil
		}
		return uintValue(r.Pagination.First), nil
	}},
	{"pagination[cursor]", func(r *OrdersRequest) ([]string, error) {
		if r.Pagination == nil || r.Pagination.Cursor == nil {
			return nil, nil
		}
		return []string{*r.Pagination.Cursor}, nil
	}},
	{"sort", func(r *OrdersRequest) ([]string, error) {
		if r.Sort == nil {
			return nil, nil
		}
		v, err := r.Sort.wireValue()
		if err != nil {
			return nil, err
		}
		return []string{v}, nil
	}},
}

// Query encodes the present filters in declaration order.
func (r *OrdersRequest) Query() (Query, error) {
	var q Query
	if r == nil {
		return q, nil
	}

	for _, rule := range ordersQueryRules {
		values, err := rule.values(r)
		if err != nil {
			return nil, err
		}
		for _, v := range values {
			q = append(q, QueryParam{Key: rule.key, Value: v})
		}
	}

	return q, nil
}

func addressQuery(address common.Address) Query {
	return Query{{Key: "address", Value: address.Hex()}}
}

func boolValue(v *bool) []string {
	if v == nil {
		return nil
	}
	return []string{strconv.FormatBool(*v)}
}

func addressValue(v *common.Address) []string {
	if v == nil {
		return nil
	}
	return []string{v.Hex()}
}

func uintValue(v *uint64) []string {
	if v == nil {
		return nil
	}
	return []string{strconv.FormatUint(*v, 10)}
}

func bigIntValue(key string, v *big.Int) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s must not be negative, got %s", ErrSerialization, key, v.String())
	}
	return []string{v.Text(10)}, nil
}
