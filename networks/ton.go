package networks

var TonChain Chain = NewTon()

func NewTon() *GenericChain {
	return NewGenericChain(ChainConfig{
		Name:              string(Ton),
		AlternativeNames:  []string{"the-open-network"},
		Label:             "TON",
		NativeTokenSymbol: "TON",
	})
}
