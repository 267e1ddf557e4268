package looksrare

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrTransport         = errors.New("looksrare transport error")
	ErrSerialization     = errors.New("looksrare serialization error")
	ErrMalformedResponse = errors.New("looksrare malformed response")
	ErrInvalidRequest    = errors.New("looksrare invalid request")
	ErrNotFound          = errors.New("looksrare resource not found")
)

// Resource names carried by NotFoundError.
const (
	ResourceAccount         = "account"
	ResourceNonce           = "nonce"
	ResourceCollection      = "collection"
	ResourceCollectionStats = "collection stats"
)

// NotFoundError is returned by single-entity lookups when the envelope carries no data.
type NotFoundError struct {
	Resource string
	Address  common.Address
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found (address: %s)", e.Resource, e.Address.Hex())
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// APIError describes a non-2xx reply from the API.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("looksrare api error status: %d, message: %s", e.StatusCode, e.Message)
}
