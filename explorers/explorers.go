// Package explorers builds links into public block explorers for accounts,
// tokens and transactions.
//
// Every link is run through Validate before it is returned. Account and
// token wallet lookups return an empty string, and no error, when the
// address is empty so callers can simply omit the link.
package explorers

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tranvictor/explink/common"
	"github.com/tranvictor/explink/config"
	"github.com/tranvictor/explink/networks"
)

// Builder turns identifiers into explorer links. Explorer overrides come
// from the config.Source it was built with, read on every call. A Builder is
// safe for concurrent use.
type Builder struct {
	source config.Source
	logger *zap.Logger
}

type Option func(*Builder)

func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder returns a Builder reading overrides from source. A nil source
// means only the built-in default explorers are used.
func NewBuilder(source config.Source, opts ...Option) *Builder {
	if source == nil {
		source = config.Map{}
	}
	b := &Builder{
		source: source,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.Named("Explorers")
	return b
}

// ResolveBasePath returns the explorer root for network without trailing
// slashes. A non-empty override always wins, then the network's config keys
// in order, then the built-in default.
func (b *Builder) ResolveBasePath(network networks.Network, override string) (string, error) {
	if override = strings.TrimSpace(override); override != "" {
		return strings.TrimRight(override, "/"), nil
	}

	chain, err := networks.GetChain(string(network))
	if err != nil {
		return "", err
	}
	result := chain.GetDefaultExplorerURL()
	if result == "" {
		return "", fmt.Errorf("exploration of the %s network: %w", network, common.ErrUnsupportedNetwork)
	}
	origin := "default"
	for _, key := range chain.GetExplorerVariableNames() {
		if value, found := b.source.Lookup(key); found {
			result = value
			origin = key
			break
		}
	}
	result = strings.TrimRight(result, "/")
	b.logger.Debug("Resolved explorer base path",
		zap.Stringer("network", chain.GetNetwork()),
		zap.String("basePath", result),
		zap.String("origin", origin))
	return result, nil
}

// URL builds the link to the kind resource identified by id on network.
// tokenID is only used for Token links and may be empty. basePath overrides
// the configured explorer when non-empty.
func (b *Builder) URL(
	network networks.Network,
	kind ResourceKind,
	id string,
	tokenID string,
	basePath string,
) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		if !kind.requiresIdentifier() {
			return "", nil
		}
		return "", fmt.Errorf("%s link needs an identifier: %w", kind, common.ErrInvalidArgument)
	}

	chain, err := networks.GetChain(string(network))
	if err != nil {
		return "", err
	}
	network = chain.GetNetwork()
	fam := familyOf(network)
	if fam == noFamily {
		return "", b.unsupported(network, kind, "", "no explorer is known for this network")
	}

	base, err := b.ResolveBasePath(network, basePath)
	if err != nil {
		return "", err
	}
	p := fam.provider(base)
	tmpl, found := templates[p][kind]
	if !found {
		return "", b.unsupported(network, kind, base, fmt.Sprintf("%s does not offer %s links", p, kind))
	}

	return Validate(tmpl(request{
		network:  network,
		basePath: base,
		id:       id,
		tokenID:  strings.TrimSpace(tokenID),
	}))
}

func (b *Builder) unsupported(network networks.Network, kind ResourceKind, basePath, reason string) error {
	b.logger.Warn("Unsupported explorer link requested",
		zap.Stringer("network", network),
		zap.Stringer("kind", kind),
		zap.String("basePath", basePath))
	return &common.OperationError{
		Network:  string(network),
		Kind:     kind.String(),
		BasePath: basePath,
		Reason:   reason,
	}
}

// AccountURL links to a place that can hold funds. Use it for non-NFT
// contracts too.
func (b *Builder) AccountURL(network networks.Network, address string, basePath string) (string, error) {
	return b.URL(network, Account, address, "", basePath)
}

// TokenWalletURL links to the tokens held by address.
func (b *Builder) TokenWalletURL(network networks.Network, address string, basePath string) (string, error) {
	return b.URL(network, TokenWallet, address, "", basePath)
}

// NFTContractURL links to the overview of a token contract.
func (b *Builder) NFTContractURL(network networks.Network, contractAddress string, basePath string) (string, error) {
	return b.URL(network, NFTContract, contractAddress, "", basePath)
}

// TokenURL links to a single token. address is the token itself on Bitcoin
// Cash and its contract elsewhere.
func (b *Builder) TokenURL(network networks.Network, address string, tokenID string, basePath string) (string, error) {
	return b.URL(network, Token, address, tokenID, basePath)
}

// TransactionURL links to a transaction, e.g. the sending of funds or tokens.
func (b *Builder) TransactionURL(network networks.Network, transactionHash string, basePath string) (string, error) {
	return b.URL(network, Transaction, transactionHash, "", basePath)
}

// IsTokenURLSupported is false where TokenURL cannot point at the individual
// token and falls back to a coarser page. Names are matched like TokenURL
// matches them; unknown names report true and fail in TokenURL instead.
func IsTokenURLSupported(network networks.Network) bool {
	parsed, err := networks.Parse(string(network))
	if err != nil {
		return true
	}
	return parsed != networks.BitcoinCash && parsed != networks.Tezos
}

var defaultBuilder = NewBuilder(config.Env())

// AccountURL uses a Builder reading overrides from the environment.
func AccountURL(network networks.Network, address string, basePath string) (string, error) {
	return defaultBuilder.AccountURL(network, address, basePath)
}

func TokenWalletURL(network networks.Network, address string, basePath string) (string, error) {
	return defaultBuilder.TokenWalletURL(network, address, basePath)
}

func NFTContractURL(network networks.Network, contractAddress string, basePath string) (string, error) {
	return defaultBuilder.NFTContractURL(network, contractAddress, basePath)
}

func TokenURL(network networks.Network, address string, tokenID string, basePath string) (string, error) {
	return defaultBuilder.TokenURL(network, address, tokenID, basePath)
}

func TransactionURL(network networks.Network, transactionHash string, basePath string) (string, error) {
	return defaultBuilder.TransactionURL(network, transactionHash, basePath)
}

func ResolveBasePath(network networks.Network, override string) (string, error) {
	return defaultBuilder.ResolveBasePath(network, override)
}
