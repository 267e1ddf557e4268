package looksrare

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
)

// Response is the raw reply of a transport round trip.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport sends a GET request. Implementations must be safe for concurrent use.
type Transport interface {
	Get(ctx context.Context, rawURL string, header http.Header) (*Response, error)
}

type HTTPTransport struct {
	client *http.Client
	logger *slog.Logger
}

func NewHTTPTransport(httpClient *http.Client, log *slog.Logger) *HTTPTransport {
	return &HTTPTransport{
		client: httpClient,
		logger: log,
	}
}

func (t *HTTPTransport) Get(ctx context.Context, rawURL string, header http.Header) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating new request: %w", err)
	}

	for key, values := range header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	res, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error doing request: %w", err)
	}

	defer func() {
		if err = res.Body.Close(); err != nil {
			t.logger.ErrorContext(ctx,
				"error closing response body",
				slog.String("url", rawURL),
				slog.Any("error", err),
			)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	return &Response{StatusCode: res.StatusCode, Body: body}, nil
}

// FastHTTPTransport maps the context deadline onto fasthttp's own deadline,
// falling back to timeout when the context has none. Cancelling the context
// returns at once; the abandoned round trip still ends by its deadline.
type FastHTTPTransport struct {
	client  *fasthttp.Client
	timeout time.Duration
}

func NewFastHTTPTransport(client *fasthttp.Client, timeout time.Duration) *FastHTTPTransport {
	return &FastHTTPTransport{
		client:  client,
		timeout: timeout,
	}
}

type fastHTTPResult struct {
	res *Response
	err error
}

func (t *FastHTTPTransport) Get(ctx context.Context, rawURL string, header http.Header) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(t.timeout)
	}

	done := make(chan fastHTTPResult, 1)
	go func() {
		res, err := t.do(rawURL, header, deadline)
		done <- fastHTTPResult{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("error doing request: %w", ctx.Err())
	case result := <-done:
		if result.err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("error doing request: %w", ctxErr)
			}
			return nil, fmt.Errorf("error doing request: %w", result.err)
		}
		return result.res, nil
	}
}

// do owns the pooled request and response for the whole round trip.
func (t *FastHTTPTransport) do(rawURL string, header http.Header, deadline time.Time) (*Response, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(http.MethodGet)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	if err := t.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, err
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())

	return &Response{StatusCode: resp.StatusCode(), Body: body}, nil
}
