package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/looksrare-integration/internal/service"
)

func (h *ServiceHandler) GetCollectionInformation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &service.AddressRequest{Address: chi.URLParam(r, "address")}

	resp, err := h.service.GetCollectionInformation(ctx, req)
	if err != nil {
		h.sendError(ctx, w, "GetCollectionInformation", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) GetCollectionStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &service.AddressRequest{Address: chi.URLParam(r, "address")}

	resp, err := h.service.GetCollectionStats(ctx, req)
	if err != nil {
		h.sendError(ctx, w, "GetCollectionStats", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) GetCollectionOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &service.AddressRequest{Address: chi.URLParam(r, "address")}

	resp, err := h.service.GetCollectionOverview(ctx, req)
	if err != nil {
		h.sendError(ctx, w, "GetCollectionOverview", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) GetTopListingRewardsCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.service.GetTopListingRewardsCollections(ctx)
	if err != nil {
		h.sendError(ctx, w, "GetTopListingRewardsCollections", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}
