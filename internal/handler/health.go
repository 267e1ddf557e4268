package handler

import (
	"net/http"

	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

func (h *ServiceHandler) Health(writer http.ResponseWriter, reader *http.Request) {
	ctx := reader.Context()

	resp, err := h.service.Health(ctx, looksrare.HealthRequest{})
	if err != nil {
		h.sendJSON(ctx, writer, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	h.sendJSON(ctx, writer, http.StatusOK, resp)
}
