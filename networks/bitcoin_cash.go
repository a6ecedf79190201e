package networks

var BitcoinCashChain Chain = NewBitcoinCash()

// NewBitcoinCash builds the Bitcoin Cash chain. Its links point at SLP token
// explorers. bitcoin.com (redirecting to blockchair.com) also works for
// plain BCH but does not focus on tokens.
func NewBitcoinCash() *GenericChain {
	return NewGenericChain(ChainConfig{
		Name:              string(BitcoinCash),
		AlternativeNames:  []string{"bch"},
		Label:             "Bitcoin Cash",
		NativeTokenSymbol: "BCH",
		ExplorerVariableNames: []string{
			"SLP_EXPLORER_BASEPATH",
			"EXPLORER_BASEPATH",
		},
		DefaultExplorerURL: "https://simpleledger.info",
	})
}
