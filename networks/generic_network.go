package networks

type ChainConfig struct {
	Name                  string   `json:"name"`
	AlternativeNames      []string `json:"alternative_names"`
	Label                 string   `json:"label"`
	NativeTokenSymbol     string   `json:"native_token_symbol"`
	ExplorerVariableNames []string `json:"explorer_variable_names"`
	DefaultExplorerURL    string   `json:"default_explorer_url"`
}

// GenericChain is a Chain backed entirely by its config.
type GenericChain struct {
	config ChainConfig
}

func NewGenericChain(config ChainConfig) *GenericChain {
	return &GenericChain{config: config}
}

func (gc *GenericChain) GetName() string {
	return gc.config.Name
}

func (gc *GenericChain) GetNetwork() Network {
	return Network(gc.config.Name)
}

func (gc *GenericChain) GetAlternativeNames() []string {
	return append([]string{}, gc.config.AlternativeNames...)
}

func (gc *GenericChain) GetLabel() string {
	return gc.config.Label
}

func (gc *GenericChain) IsEVM() bool {
	return IsEVM(gc.GetNetwork())
}

func (gc *GenericChain) GetNativeTokenSymbol() string {
	return gc.config.NativeTokenSymbol
}

func (gc *GenericChain) GetExplorerVariableNames() []string {
	return append([]string{}, gc.config.ExplorerVariableNames...)
}

func (gc *GenericChain) GetDefaultExplorerURL() string {
	return gc.config.DefaultExplorerURL
}
