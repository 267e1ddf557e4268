package looksrare

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

const listingRewardsSize = 5

// envelope is the wrapper every endpoint replies with. Payload presence decides
// the outcome; Success is required for shape checking only.
type envelope[T any] struct {
	Success *bool  `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data"`
}

func decodeEnvelope[T any](body []byte) (*envelope[T], error) {
	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if env.Success == nil {
		return nil, fmt.Errorf("%w: envelope has no success field", ErrMalformedResponse)
	}
	return &env, nil
}

func isEnvelope(body []byte) bool {
	_, err := decodeEnvelope[json.RawMessage](body)
	return err == nil
}

// decodeLookup unwraps a single-entity reply; absent data means the key is unknown.
func decodeLookup[T any](body []byte, resource string, address common.Address) (*T, error) {
	env, err := decodeEnvelope[T](body)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, &NotFoundError{Resource: resource, Address: address}
	}
	return env.Data, nil
}

// decodeList unwraps a list reply; absent data means no matches.
func decodeList[T any](body []byte) ([]T, error) {
	env, err := decodeEnvelope[[]T](body)
	if err != nil {
		return nil, err
	}
	if env.Data == nil || *env.Data == nil {
		return []T{}, nil
	}
	return *env.Data, nil
}

func decodeNonce(body []byte, address common.Address) (uint64, error) {
	raw, err := decodeLookup[string](body, ResourceNonce, address)
	if err != nil {
		return 0, err
	}

	nonce, err := strconv.ParseUint(*raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: nonce %q: %w", ErrMalformedResponse, *raw, err)
	}
	return nonce, nil
}

// decodeListingRewards treats only absent data as empty; a present list must be full.
func decodeListingRewards(body []byte) ([]CollectionRewards, error) {
	env, err := decodeEnvelope[[]CollectionRewards](body)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []CollectionRewards{}, nil
	}

	rewards := *env.Data
	if len(rewards) != listingRewardsSize {
		return nil, fmt.Errorf("%w: expected %d listing rewards collections, got %d",
			ErrMalformedResponse,
			listingRewardsSize,
			len(rewards),
		)
	}
	return rewards, nil
}

// decodeAPIError builds the error for a non-2xx reply that is not an envelope,
// keeping the raw body when it carries no message.
func decodeAPIError(statusCode int, body []byte) error {
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil || env.Message == "" {
		return &APIError{StatusCode: statusCode, Message: string(body)}
	}
	return &APIError{StatusCode: statusCode, Message: env.Message}
}
