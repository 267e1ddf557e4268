package looksrare

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	TransportNetHTTP  = "nethttp"
	TransportFastHTTP = "fasthttp"
)

type Config struct {
	Network   string        `envconfig:"LOOKSRARE_NETWORK" default:"mainnet"`
	BaseURL   string        `envconfig:"LOOKSRARE_BASE_URL"`
	APIKey    string        `envconfig:"LOOKSRARE_API_KEY"`
	Transport string        `envconfig:"LOOKSRARE_TRANSPORT" default:"nethttp"`
	Timeout   time.Duration `envconfig:"LOOKSRARE_TIMEOUT" default:"10s"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.Network, validation.Required, validation.By(func(value interface{}) error {
			s, _ := value.(string)
			if _, err := ParseNetwork(s); err != nil {
				return errors.New("must be a known network")
			}
			return nil
		})),
		validation.Field(&c.BaseURL, is.URL),
		validation.Field(&c.Transport, validation.In(TransportNetHTTP, TransportFastHTTP)),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond)),
	)
}

// Endpoint resolves the configured network, honouring a BaseURL override.
func (c *Config) Endpoint() (Endpoint, error) {
	network, err := ParseNetwork(c.Network)
	if err != nil {
		return Endpoint{}, err
	}

	endpoint := network.Resolve()
	if c.BaseURL != "" {
		endpoint = Endpoint{
			BaseURL: c.BaseURL,
			APIRoot: apiRoot(c.BaseURL),
		}
	}
	return endpoint, nil
}
