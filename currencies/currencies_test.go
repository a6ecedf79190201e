package currencies

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/explink/networks"
)

func TestEveryNetworkHasANativeCurrency(t *testing.T) {
	for _, chain := range networks.GetSupportedChains() {
		t.Run(chain.GetName(), func(t *testing.T) {
			native, found := Native(chain.GetNetwork())
			require.True(t, found)
			assert.True(t, native.NativeToken)
			assert.Equal(t, chain.GetNativeTokenSymbol(), strings.ToUpper(native.Code))
			assert.NotEmpty(t, native.Symbol)
			assert.NotEmpty(t, native.DisplayText)
		})
	}
}

func TestLookup(t *testing.T) {
	scor, found := Lookup(networks.Ton, "SCOR")
	require.True(t, found)
	assert.Equal(t, Currency{Symbol: "SCOR", Code: "scor", NativeToken: false, DisplayText: "$SCOR"}, scor)

	xtz, found := Lookup(networks.Tezos, "xtz")
	require.True(t, found)
	assert.Equal(t, "ꜩ", xtz.Symbol)

	polygon, found := Lookup(networks.Polygon, "matic")
	require.True(t, found)
	assert.True(t, polygon.NativeToken)

	_, found = Lookup(networks.Ethereum, "scor")
	assert.False(t, found)
	_, found = Lookup("dogecoin", "doge")
	assert.False(t, found)
}

func TestForNetworkReturnsCopies(t *testing.T) {
	ton := ForNetwork(networks.Ton)
	require.Len(t, ton, 2)
	delete(ton, "ton")
	ton["scor"] = Currency{Code: "changed"}

	again := ForNetwork(networks.Ton)
	assert.Len(t, again, 2)
	assert.Equal(t, "scor", again["scor"].Code)

	all := All()
	all[networks.Ethereum]["eth"] = Currency{}
	eth, found := Lookup(networks.Ethereum, "eth")
	require.True(t, found)
	assert.Equal(t, "ether", eth.DisplayText)

	assert.Empty(t, ForNetwork("dogecoin"))
}

func TestLoadTableRejectsBadData(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown network", "dogecoin:\n  - code: doge\n"},
		{"alias listed twice", "matic:\n  - code: matic\npolygon:\n  - code: pol\n"},
		{"duplicate code", "ton:\n  - code: ton\n  - code: TON\n"},
		{"missing code", "ton:\n  - symbol: TON\n"},
		{"two native tokens", "ton:\n  - code: ton\n    native_token: true\n  - code: scor\n    native_token: true\n"},
		{"not yaml", "ton: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadTable([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}
