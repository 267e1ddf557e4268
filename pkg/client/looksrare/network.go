package looksrare

import (
	"fmt"
	"strings"
)

const (
	APIBaseMainnet = "https://api.looksrare.org"
	APIPath        = "/api/"
	Version        = "v1"
)

// Network identifies the LooksRare deployment a client talks to.
type Network int

const (
	Mainnet Network = iota
)

var networkNames = map[Network]string{
	Mainnet: "mainnet",
}

var networkBaseURLs = map[Network]string{
	Mainnet: APIBaseMainnet,
}

// Endpoint is the resolved location of a network's API.
type Endpoint struct {
	BaseURL string
	APIRoot string
}

func (n Network) String() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return fmt.Sprintf("network(%d)", int(n))
}

// Resolve returns the base URL and versioned API root for the network.
func (n Network) Resolve() Endpoint {
	base, ok := networkBaseURLs[n]
	if !ok {
		base = APIBaseMainnet
	}

	return Endpoint{
		BaseURL: base,
		APIRoot: apiRoot(base),
	}
}

func ParseNetwork(s string) (Network, error) {
	for n, name := range networkNames {
		if strings.EqualFold(name, s) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown network %q", s)
}

func apiRoot(base string) string {
	return strings.TrimRight(base, "/") + APIPath + Version
}
