package looksrare

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const apiKeyHeader = "X-Looks-Api-Key"

type Client interface {
	GetAccount(ctx context.Context, req *AccountRequest) (*Account, error)
	GetOrders(ctx context.Context, req *OrdersRequest) ([]Order, error)
	GetNonce(ctx context.Context, req *NonceRequest) (uint64, error)
	GetCollectionInformation(ctx context.Context, req *CollectionRequest) (*CollectionInformation, error)
	GetCollectionStats(ctx context.Context, req *CollectionRequest) (*CollectionStats, error)
	GetTopListingRewardsCollections(ctx context.Context) ([]CollectionRewards, error)
}

// BasicClient holds no per-call state and may be shared between goroutines.
type BasicClient struct {
	transport Transport
	logger    *slog.Logger
	cfg       *Config
	endpoint  Endpoint
}

func NewBasicClient(transport Transport, cfg *Config, log *slog.Logger) (*BasicClient, error) {
	endpoint, err := cfg.Endpoint()
	if err != nil {
		return nil, fmt.Errorf("error resolving looksrare endpoint: %w", err)
	}

	return &BasicClient{
		transport: transport,
		logger:    log,
		cfg:       cfg,
		endpoint:  endpoint,
	}, nil
}

// Endpoint returns the resolved network location the client sends requests to.
func (c *BasicClient) Endpoint() Endpoint {
	return c.endpoint
}

// get performs a GET on resource and returns the reply body. A non-2xx reply is
// returned as is when its body is an envelope, so the envelope rules decide.
func (c *BasicClient) get(ctx context.Context, op, resource string, query Query) ([]byte, error) {
	rawURL := fmt.Sprintf("%s/%s", c.endpoint.APIRoot, resource)
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		header.Set(apiKeyHeader, c.cfg.APIKey)
	}

	start := time.Now()
	res, err := c.transport.Get(ctx, rawURL, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
	}

	c.logger.DebugContext(ctx, "looksrare request",
		slog.String("op", op),
		slog.String("url", rawURL),
		slog.Int("status", res.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if (res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices) && !isEnvelope(res.Body) {
		return nil, decodeAPIError(res.StatusCode, res.Body)
	}

	return res.Body, nil
}

func validateRequest(ctx context.Context, op string, req interface {
	ValidateWithContext(ctx context.Context) error
}) error {
	if err := req.ValidateWithContext(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidRequest, op, err)
	}
	return nil
}
