package networks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tranvictor/explink/common"
)

// Insert more Chain implementations here to support
// more networks
var supportedChains = []Chain{
	BitcoinCashChain,
	EthereumChain,
	MaticChain,
	TezosChain,
	SuiChain,
	TonChain,
}

var globalSupportedNetworks = newSupportedNetworks()

type networks struct {
	chains []Chain
	byName map[string]Chain
}

func (n *networks) getSupportedNetworkNames() []string {
	res := []string{}
	for _, c := range n.chains {
		res = append(res, c.GetName())
		res = append(res, c.GetAlternativeNames()...)
	}
	return res
}

func (n *networks) getChain(name string) (Chain, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("network name is empty: %w", common.ErrInvalidArgument)
	}
	res, found := n.byName[key]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, common.ErrUnsupportedNetwork)
	}
	return res, nil
}

func newSupportedNetworks() *networks {
	result := networks{
		chains: supportedChains,
		byName: map[string]Chain{},
	}
	for _, c := range supportedChains {
		names := append([]string{c.GetName()}, c.GetAlternativeNames()...)
		for _, name := range names {
			key := strings.ToLower(name)
			if _, found := result.byName[key]; found {
				panic(
					fmt.Errorf("network with name or alternative name of '%s' already exists", name),
				)
			}
			result.byName[key] = c
		}
	}
	return &result
}

// GetChain looks a chain up by name or alternative name, ignoring case and
// surrounding whitespace.
func GetChain(name string) (Chain, error) {
	return globalSupportedNetworks.getChain(name)
}

// Parse returns the canonical identifier for name, so "Polygon" parses to
// Matic.
func Parse(name string) (Network, error) {
	c, err := GetChain(name)
	if err != nil {
		return "", err
	}
	return c.GetNetwork(), nil
}

// Label returns the human readable name of network.
func Label(network string) (string, error) {
	c, err := GetChain(network)
	if err != nil {
		return "", err
	}
	return c.GetLabel(), nil
}

// GetSupportedChains returns every supported chain in registration order.
func GetSupportedChains() []Chain {
	return append([]Chain{}, globalSupportedNetworks.chains...)
}

// GetSupportedNetworkNames returns all names and alternative names, sorted.
func GetSupportedNetworkNames() []string {
	res := globalSupportedNetworks.getSupportedNetworkNames()
	sort.Strings(res)
	return res
}
