package networks

var SuiChain Chain = NewSui()

func NewSui() *GenericChain {
	return NewGenericChain(ChainConfig{
		Name:              string(Sui),
		Label:             "Sui",
		NativeTokenSymbol: "SUI",
	})
}
