package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/unrolled/render"

	"github.com/vladislavprovich/looksrare-integration/internal/service"
	"github.com/vladislavprovich/looksrare-integration/pkg/client/looksrare"
)

type Handler interface {
	GetAccount(w http.ResponseWriter, r *http.Request)
	GetNonce(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetCollectionInformation(w http.ResponseWriter, r *http.Request)
	GetCollectionStats(w http.ResponseWriter, r *http.Request)
	GetCollectionOverview(w http.ResponseWriter, r *http.Request)
	GetTopListingRewardsCollections(w http.ResponseWriter, r *http.Request)
	Health(writer http.ResponseWriter, reader *http.Request)
}

type ServiceHandler struct {
	service service.LooksRareService
	logger  *slog.Logger
	cfg     *Config
	render  *render.Render
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewServiceHandler(srv service.LooksRareService, logger *slog.Logger, cfg *Config, render *render.Render) *ServiceHandler {
	return &ServiceHandler{
		service: srv,
		logger:  logger,
		cfg:     cfg,
		render:  render,
	}
}

func (h *ServiceHandler) sendJSON(ctx context.Context, w io.Writer, status int, body any) {
	if err := h.render.JSON(w, status, body); err != nil {
		h.logger.ErrorContext(ctx, "render JSON error", slog.Any("error", err))
	}
}

// sendError maps the client error kinds onto HTTP statuses.
func (h *ServiceHandler) sendError(ctx context.Context, w io.Writer, op string, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, op+" error", slog.Any("error", err))
	} else {
		h.logger.WarnContext(ctx, op+" client error", slog.Any("error", err))
	}

	h.sendJSON(ctx, w, status, ErrorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	var apiErr *looksrare.APIError

	switch {
	case errors.Is(err, looksrare.ErrInvalidRequest), errors.Is(err, looksrare.ErrSerialization):
		return http.StatusBadRequest
	case errors.Is(err, looksrare.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &apiErr),
		errors.Is(err, looksrare.ErrMalformedResponse),
		errors.Is(err, looksrare.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
