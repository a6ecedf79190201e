package networks

var MaticChain Chain = NewMatic()

// NewMatic builds the Polygon (formerly Matic) chain. MATIC_EXPLORER_BASEPATH
// is sometimes pointed at OpenSea instead of polygonscan.
func NewMatic() *GenericChain {
	return NewGenericChain(ChainConfig{
		Name:                  string(Matic),
		AlternativeNames:      []string{"polygon"},
		Label:                 "Polygon",
		NativeTokenSymbol:     "MATIC",
		ExplorerVariableNames: []string{"MATIC_EXPLORER_BASEPATH"},
		DefaultExplorerURL:    "https://polygonscan.com/",
	})
}
