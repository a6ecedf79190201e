// Package currencies holds display data for the currencies of each supported
// network. The table is read once at start up and never changes.
package currencies

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tranvictor/explink/networks"
)

// Currency describes one currency or token of a network.
type Currency struct {
	Symbol      string `yaml:"symbol" json:"symbol"`
	Code        string `yaml:"code" json:"code"`
	NativeToken bool   `yaml:"native_token" json:"native_token"`
	DisplayText string `yaml:"display_text" json:"display_text"`
}

//go:embed currencies.yaml
var rawTable []byte

var table = mustLoadTable(rawTable)

func mustLoadTable(content []byte) map[networks.Network]map[string]Currency {
	result, err := loadTable(content)
	if err != nil {
		panic(err)
	}
	return result
}

func loadTable(content []byte) (map[networks.Network]map[string]Currency, error) {
	raw := map[string][]Currency{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal currency table: %w", err)
	}

	result := map[networks.Network]map[string]Currency{}
	for name, list := range raw {
		network, err := networks.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("currency table: %w", err)
		}
		if _, found := result[network]; found {
			return nil, fmt.Errorf("currency table lists network '%s' twice", network)
		}
		byCode := map[string]Currency{}
		natives := 0
		for _, c := range list {
			c.Code = strings.ToLower(strings.TrimSpace(c.Code))
			if c.Code == "" {
				return nil, fmt.Errorf("currency table: %s has a currency without a code", network)
			}
			if _, found := byCode[c.Code]; found {
				return nil, fmt.Errorf("currency table: %s lists '%s' twice", network, c.Code)
			}
			if c.NativeToken {
				natives++
			}
			byCode[c.Code] = c
		}
		if natives > 1 {
			return nil, fmt.Errorf("currency table: %s has %d native tokens", network, natives)
		}
		result[network] = byCode
	}
	return result, nil
}

// ForNetwork returns a copy of the currencies of network keyed by code. The
// map is empty for networks without currency data.
func ForNetwork(network networks.Network) map[string]Currency {
	result := map[string]Currency{}
	for code, c := range table[network] {
		result[code] = c
	}
	return result
}

// Lookup finds a currency of network by its code, ignoring case.
func Lookup(network networks.Network, code string) (Currency, bool) {
	c, found := table[network][strings.ToLower(strings.TrimSpace(code))]
	return c, found
}

// Native returns the currency used to pay fees on network.
func Native(network networks.Network) (Currency, bool) {
	for _, c := range table[network] {
		if c.NativeToken {
			return c, true
		}
	}
	return Currency{}, false
}

// All returns a deep copy of the whole table.
func All() map[networks.Network]map[string]Currency {
	result := map[networks.Network]map[string]Currency{}
	for network := range table {
		result[network] = ForNetwork(network)
	}
	return result
}
