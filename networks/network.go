package networks

// Network is the canonical identifier of a supported chain.
type Network string

const (
	BitcoinCash Network = "bitcoin-cash" // https://bitcoincash.org/
	Ethereum    Network = "ethereum"     // https://ethereum.org/
	Matic       Network = "matic"        // https://polygon.technology/
	Tezos       Network = "tezos"        // https://tezos.com/
	Sui         Network = "sui"
	Ton         Network = "ton"

	// Polygon is the rebranded name of Matic and compares equal to it.
	Polygon = Matic
)

func (n Network) String() string {
	return string(n)
}

// Chain describes a supported network and where its explorers live.
type Chain interface {
	GetName() string
	GetNetwork() Network
	GetAlternativeNames() []string
	GetLabel() string
	IsEVM() bool
	GetNativeTokenSymbol() string

	// GetExplorerVariableNames lists the configuration keys that may override
	// the default explorer, most specific first.
	GetExplorerVariableNames() []string
	// GetDefaultExplorerURL is empty when no explorer links can be built for
	// the network.
	GetDefaultExplorerURL() string
}

// IsEVM reports whether network shares Ethereum's address and explorer
// conventions.
func IsEVM(network Network) bool {
	return network == Ethereum || network == Matic
}
