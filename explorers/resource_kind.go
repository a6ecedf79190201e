package explorers

import (
	"fmt"
	"strings"

	"github.com/tranvictor/explink/common"
)

// ResourceKind is the kind of on-chain object a link points at.
type ResourceKind int

const (
	// Account is anything that can hold funds, including non-NFT contracts.
	Account ResourceKind = iota
	// TokenWallet is an account viewed through the tokens it holds.
	TokenWallet
	// NFTContract is the overview page of a token contract.
	NFTContract
	// Token is a single token, or an SLP token on Bitcoin Cash.
	Token
	Transaction
)

var resourceKindNames = map[ResourceKind]string{
	Account:     "account",
	TokenWallet: "token-wallet",
	NFTContract: "nft-contract",
	Token:       "token",
	Transaction: "transaction",
}

// ResourceKinds lists every kind in declaration order.
func ResourceKinds() []ResourceKind {
	return []ResourceKind{Account, TokenWallet, NFTContract, Token, Transaction}
}

func (k ResourceKind) String() string {
	if name, found := resourceKindNames[k]; found {
		return name
	}
	return fmt.Sprintf("resource-kind(%d)", int(k))
}

// ParseResourceKind is the inverse of ResourceKind.String.
func ParseResourceKind(s string) (ResourceKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for kind, kindName := range resourceKindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("resource kind '%s': %w", s, common.ErrInvalidArgument)
}

// requiresIdentifier is false for kinds where an empty identifier means
// "no link" rather than a caller mistake.
func (k ResourceKind) requiresIdentifier() bool {
	return k != Account && k != TokenWallet
}
