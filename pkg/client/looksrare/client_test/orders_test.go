package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

const (
	minPrice = "12000000000000000000000000000000000000"
	maxPrice = "13000000000000000000000000000000000000"
)

func fullOrdersRequest(t *testing.T) *looksrare.OrdersRequest {
	t.Helper()

	isOrderAsk := true
	collection := common.HexToAddress("0x34d85c9cdeb23fa97cb08333b511ac86e1c4e258")
	signer := common.HexToAddress("0x9E69b59b8d2A094CB1117f92Ff7DCf51Ed467B41")
	strategy := common.HexToAddress("0x579af6fd30bf83a5ac0d636bc619f98dbdeb930c")
	currency := common.HexToAddress("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
	sort := looksrare.SortNewest

	return &looksrare.OrdersRequest{
		IsOrderAsk: &isOrderAsk,
		Collection: &collection,
		TokenID:    bigInt(t, "62962"),
		Signer:     &signer,
		Nonce:      bigInt(t, "17832"),
		Strategy:   &strategy,
		Currency:   &currency,
		Price: &looksrare.Price{
			Min: bigInt(t, minPrice),
			Max: bigInt(t, maxPrice),
		},
		StartTime:  uint64Ptr(1667747434),
		EndTime:    uint64Ptr(1667754634),
		Status:     []looksrare.Status{looksrare.StatusCancelled, looksrare.StatusExpired},
		Pagination: &looksrare.Pagination{First: uint64Ptr(4)},
		Sort:       &sort,
	}
}

func TestOrdersRequest_Query(t *testing.T) {
	req := fullOrdersRequest(t)

	query, err := req.Query()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := looksrare.Query{
		{Key: "isOrderAsk", Value: "true"},
		{Key: "collection", Value: req.Collection.Hex()},
		{Key: "tokenId", Value: "62962"},
		{Key: "signer", Value: req.Signer.Hex()},
		{Key: "nonce", Value: "17832"},
		{Key: "strategy", Value: req.Strategy.Hex()},
		{Key: "currency", Value: req.Currency.Hex()},
		{Key: "price[min]", Value: minPrice},
		{Key: "price[max]", Value: maxPrice},
		{Key: "startTime", Value: "1667747434"},
		{Key: "endTime", Value: "1667754634"},
		{Key: "status[]", Value: "CANCELLED"},
		{Key: "status[]", Value: "EXPIRED"},
		{Key: "pagination[first]", Value: "4"},
		{Key: "sort", Value: "NEWEST"},
	}

	if len(query) != len(expected) {
		t.Fatalf("expected %d pairs, got %d: %+v", len(expected), len(query), query)
	}
	for i := range expected {
		if query[i] != expected[i] {
			t.Errorf("pair %d: expected %+v, got %+v", i, expected[i], query[i])
		}
	}
}

func TestOrdersRequest_QueryRoundTrip(t *testing.T) {
	req := fullOrdersRequest(t)

	query, err := req.Query()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := url.ParseQuery(query.Encode())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if got := parsed["status[]"]; len(got) != 2 || got[0] != "CANCELLED" || got[1] != "EXPIRED" {
		t.Errorf("unexpected status values %v", got)
	}
	if got := parsed.Get("price[min]"); got != minPrice {
		t.Errorf("price lost precision: %s", got)
	}
	if _, ok := parsed["pagination[cursor]"]; ok {
		t.Error("absent cursor must not be encoded")
	}
	if len(parsed) != 14 {
		t.Errorf("expected 14 distinct keys, got %d: %v", len(parsed), parsed)
	}
}

func TestOrdersRequest_QueryIsDeterministic(t *testing.T) {
	req := fullOrdersRequest(t)

	first, err := req.Query()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := req.Query()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Encode() != second.Encode() {
		t.Errorf("expected identical encodings:\n%s\n%s", first.Encode(), second.Encode())
	}
	if !strings.HasPrefix(first.Encode(), "isOrderAsk=true&collection=") {
		t.Errorf("unexpected field order %s", first.Encode())
	}
}

func TestOrdersRequest_QueryOmitsAbsentFields(t *testing.T) {
	cursor := "0xd12240238374bbb1b23078fc71feeffa1d6c54b81888dfc5d9ea54d17c6a30a7"

	tests := []struct {
		name     string
		req      *looksrare.OrdersRequest
		expected string
	}{
		{
			name:     "empty_request",
			req:      &looksrare.OrdersRequest{},
			expected: "",
		},
		{
			name: "empty_composites",
			req: &looksrare.OrdersRequest{
				Price:      &looksrare.Price{},
				Pagination: &looksrare.Pagination{},
				Status:     []looksrare.Status{},
			},
			expected: "",
		},
		{
			name: "cursor_only",
			req: &looksrare.OrdersRequest{
				Pagination: &looksrare.Pagination{Cursor: &cursor},
			},
			expected: "pagination%5Bcursor%5D=" + cursor,
		},
		{
			name: "max_price_only",
			req: &looksrare.OrdersRequest{
				Price: &looksrare.Price{Max: bigInt(t, maxPrice)},
			},
			expected: "price%5Bmax%5D=" + maxPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := tt.req.Query()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if query.Encode() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, query.Encode())
			}
		})
	}
}

func TestOrdersRequest_QuerySerializationErrors(t *testing.T) {
	unknownSort := looksrare.Sort(42)

	tests := []struct {
		name        string
		req         *looksrare.OrdersRequest
		expectedErr string
	}{
		{
			name:        "negative_token_id",
			req:         &looksrare.OrdersRequest{TokenID: bigInt(t, "-1")},
			expectedErr: "tokenId must not be negative",
		},
		{
			name:        "unknown_status",
			req:         &looksrare.OrdersRequest{Status: []looksrare.Status{looksrare.StatusValid, looksrare.Status(9)}},
			expectedErr: "status(9) has no wire form",
		},
		{
			name:        "unknown_sort",
			req:         &looksrare.OrdersRequest{Sort: &unknownSort},
			expectedErr: "sort(42) has no wire form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Query()
			if !errors.Is(err, looksrare.ErrSerialization) {
				t.Fatalf("expected serialization error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.expectedErr) {
				t.Errorf("expected error to contain %q, got %q", tt.expectedErr, err.Error())
			}
		})
	}
}

func orderJSON(hash, price, status string) string {
	return fmt.Sprintf(`{
		"hash": "%s",
		"collectionAddress": "0x34d85c9cdeb23fa97cb08333b511ac86e1c4e258",
		"tokenId": "62962",
		"isOrderAsk": true,
		"signer": "0x9E69b59b8d2A094CB1117f92Ff7DCf51Ed467B41",
		"strategy": "0x579af6fd30bf83a5ac0d636bc619f98dbdeb930c",
		"currencyAddress": "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		"amount": "1",
		"price": "%s",
		"nonce": "17832",
		"startTime": 1667747434,
		"endTime": 1667754634,
		"minPercentageToAsk": 8500,
		"params": "0x",
		"status": "%s",
		"signature": "0x%s",
		"v": 27,
		"r": "0x%s",
		"s": "0x%s"
	}`, hash, price, status, strings.Repeat("ab", 65), strings.Repeat("11", 32), strings.Repeat("22", 32))
}

// newOrdersServer echoes the requested filters back: it returns pagination[first]
// orders priced at price[min] with the last requested status.
func newOrdersServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/orders" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		q := r.URL.Query()
		count := 2
		if first := q.Get("pagination[first]"); first != "" {
			count, _ = strconv.Atoi(first)
		}
		price := q.Get("price[min]")
		if price == "" {
			price = "1000000000000000000"
		}
		status := "VALID"
		if statuses := q["status[]"]; len(statuses) > 0 {
			status = statuses[len(statuses)-1]
		}

		orders := make([]string, count)
		for i := range orders {
			orders[i] = orderJSON(fmt.Sprintf("0x%064x", i+1), price, status)
		}
		_, _ = w.Write([]byte(`{"success": true, "data": [` + strings.Join(orders, ",") + `]}`))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestBasicClient_GetOrders(t *testing.T) {
	server := newOrdersServer(t)
	client := newTestClient(t, server)
	req := fullOrdersRequest(t)

	orders, err := client.GetOrders(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(orders) == 0 || len(orders) > 4 {
		t.Fatalf("expected between 1 and 4 orders, got %d", len(orders))
	}

	for _, order := range orders {
		if order.CollectionAddress != *req.Collection || order.Signer != *req.Signer {
			t.Errorf("unexpected addresses in %+v", order)
		}
		if !order.PriceWithin(*req.Price) {
			t.Errorf("price %s outside requested range", order.Price.String())
		}
		if order.Price.String() != minPrice {
			t.Errorf("price lost precision: %s", order.Price.String())
		}
		if !order.HasStatus(req.Status...) {
			t.Errorf("status %s not in requested statuses", order.Status)
		}
		if order.StartTime > order.EndTime {
			t.Errorf("start time after end time in %+v", order)
		}
		if order.V == nil || *order.V != 27 || order.R == nil || order.S == nil {
			t.Errorf("expected signature components in %+v", order)
		}
		if order.R.Hex() != "0x"+strings.Repeat("11", 32) {
			t.Errorf("unexpected r %s", order.R.Hex())
		}
	}
}

func TestBasicClient_GetOrders_Pagination(t *testing.T) {
	server := newOrdersServer(t)
	client := newTestClient(t, server)
	cursor := "0xd12240238374bbb1b23078fc71feeffa1d6c54b81888dfc5d9ea54d17c6a30a7"

	orders, err := client.GetOrders(context.Background(), &looksrare.OrdersRequest{
		Pagination: &looksrare.Pagination{First: uint64Ptr(4), Cursor: &cursor},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(orders) > 4 {
		t.Errorf("expected at most 4 orders, got %d", len(orders))
	}
}

func TestBasicClient_GetOrders_EmptyResults(t *testing.T) {
	tests := []struct {
		name             string
		mockStatusCode   int
		mockResponseBody string
	}{
		{name: "null_data", mockStatusCode: http.StatusOK, mockResponseBody: `{"success": true, "data": null}`},
		{name: "missing_data", mockStatusCode: http.StatusOK, mockResponseBody: `{"success": false, "message": "no orders"}`},
		{name: "empty_list", mockStatusCode: http.StatusOK, mockResponseBody: `{"success": true, "data": []}`},
		{
			name:             "non_2xx_envelope_without_data",
			mockStatusCode:   http.StatusNotFound,
			mockResponseBody: `{"success": false, "message": "Orders not found", "data": null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, tt.mockStatusCode, tt.mockResponseBody, nil)
			client := newTestClient(t, server)

			orders, err := client.GetOrders(context.Background(), &looksrare.OrdersRequest{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if orders == nil || len(orders) != 0 {
				t.Errorf("expected empty non-nil slice, got %#v", orders)
			}
		})
	}
}

func TestOrdersRequest_ValidateNil(t *testing.T) {
	var req *looksrare.OrdersRequest

	if err := req.ValidateWithContext(context.Background()); err != nil {
		t.Errorf("expected nil request to mean no filters, got %v", err)
	}
}

func TestBasicClient_GetOrders_InvalidRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         *looksrare.OrdersRequest
		expectedErr string
	}{
		{
			name:        "end_before_start",
			req:         &looksrare.OrdersRequest{StartTime: uint64Ptr(20), EndTime: uint64Ptr(10)},
			expectedErr: "endTime: must not be before startTime",
		},
		{
			name: "max_below_min",
			req: &looksrare.OrdersRequest{Price: &looksrare.Price{
				Min: bigInt(t, maxPrice),
				Max: bigInt(t, minPrice),
			}},
			expectedErr: "max: must not be below min",
		},
		{
			name:        "zero_first",
			req:         &looksrare.OrdersRequest{Pagination: &looksrare.Pagination{First: uint64Ptr(0)}},
			expectedErr: "first: must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, http.StatusOK, `{"success": true, "data": []}`, nil)
			client := newTestClient(t, server)

			_, err := client.GetOrders(context.Background(), tt.req)
			if !errors.Is(err, looksrare.ErrInvalidRequest) {
				t.Fatalf("expected invalid request error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.expectedErr) {
				t.Errorf("expected error to contain %q, got %q", tt.expectedErr, err.Error())
			}
		})
	}
}
