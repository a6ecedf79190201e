package networks

var TezosChain Chain = NewTezos()

// NewTezos builds the Tezos chain. https://better-call.dev/ is the usual
// alternative to tzkt.
func NewTezos() *GenericChain {
	return NewGenericChain(ChainConfig{
		Name:                  string(Tezos),
		AlternativeNames:      []string{"xtz"},
		Label:                 "Tezos",
		NativeTokenSymbol:     "XTZ",
		ExplorerVariableNames: []string{"TEZOS_EXPLORER_BASEPATH"},
		DefaultExplorerURL:    "https://tzkt.io/",
	})
}
