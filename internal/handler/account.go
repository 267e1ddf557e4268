package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/looksrare-integration/internal/service"
)

func (h *ServiceHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &service.AddressRequest{Address: chi.URLParam(r, "address")}

	resp, err := h.service.GetAccount(ctx, req)
	if err != nil {
		h.sendError(ctx, w, "GetAccount", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) GetNonce(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := &service.AddressRequest{Address: chi.URLParam(r, "address")}

	resp, err := h.service.GetNonce(ctx, req)
	if err != nil {
		h.sendError(ctx, w, "GetNonce", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}
