package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vladislavprovich/looksrare-integration/internal/service"
	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

func (h *ServiceHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parseOrdersRequest(r.URL.Query())
	if err != nil {
		h.sendError(ctx, w, "GetOrders", fmt.Errorf("%w: %w", looksrare.ErrInvalidRequest, err))
		return
	}

	resp, err := h.service.GetOrders(ctx, req)
	if err != nil {
		h.sendError(ctx, w, "GetOrders", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func parseOrdersRequest(q url.Values) (*service.OrdersRequest, error) {
	req := &service.OrdersRequest{
		Collection: q.Get("collection"),
		TokenID:    q.Get("tokenId"),
		Signer:     q.Get("signer"),
		Nonce:      q.Get("nonce"),
		Strategy:   q.Get("strategy"),
		Currency:   q.Get("currency"),
		MinPrice:   q.Get("minPrice"),
		MaxPrice:   q.Get("maxPrice"),
		Status:     q["status"],
		Cursor:     q.Get("cursor"),
		Sort:       q.Get("sort"),
	}

	if v := q.Get("isOrderAsk"); v != "" {
		isOrderAsk, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("isOrderAsk: %w", err)
		}
		req.IsOrderAsk = &isOrderAsk
	}

	var err error
	if req.StartTime, err = parseUint(q, "startTime"); err != nil {
		return nil, err
	}
	if req.EndTime, err = parseUint(q, "endTime"); err != nil {
		return nil, err
	}
	if req.First, err = parseUint(q, "first"); err != nil {
		return nil, err
	}

	return req, nil
}

func parseUint(q url.Values, key string) (*uint64, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &n, nil
}
