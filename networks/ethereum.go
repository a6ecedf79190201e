package networks

var EthereumChain Chain = NewEthereum()

// NewEthereum builds the Ethereum mainnet chain. Test networks are served by
// pointing ETH_EXPLORER_BASEPATH at their explorer, which shares mainnet's
// paths.
func NewEthereum() *GenericChain {
	return NewGenericChain(ChainConfig{
		Name:                  string(Ethereum),
		AlternativeNames:      []string{"mainnet", "eth"},
		Label:                 "Ethereum",
		NativeTokenSymbol:     "ETH",
		ExplorerVariableNames: []string{"ETH_EXPLORER_BASEPATH"},
		DefaultExplorerURL:    "https://etherscan.io/",
	})
}
