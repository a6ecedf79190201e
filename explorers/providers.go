package explorers

import (
	"fmt"
	"strings"

	"github.com/tranvictor/explink/networks"
)

// provider is a family of explorer websites sharing one URL layout.
type provider int

const (
	simpleLedger provider = iota
	slpExplorer
	etherscanLike
	openSea
	tzkt
	betterCallDev
)

var providerNames = map[provider]string{
	simpleLedger:  "simpleledger",
	slpExplorer:   "slp explorer",
	etherscanLike: "etherscan",
	openSea:       "opensea",
	tzkt:          "tzkt",
	betterCallDev: "better-call.dev",
}

func (p provider) String() string {
	return providerNames[p]
}

// family groups the networks that pick their provider the same way.
type family int

const (
	noFamily family = iota
	slpFamily
	evmFamily
	tezosFamily
)

func familyOf(network networks.Network) family {
	switch {
	case network == networks.BitcoinCash:
		return slpFamily
	case networks.IsEVM(network):
		return evmFamily
	case network == networks.Tezos:
		return tezosFamily
	}
	return noFamily
}

// provider expects basePath without trailing slashes.
func (f family) provider(basePath string) provider {
	switch f {
	case slpFamily:
		if strings.HasSuffix(basePath, "/simpleledger.info") {
			return simpleLedger
		}
		return slpExplorer
	case evmFamily:
		if strings.HasSuffix(basePath, "/opensea.io") {
			return openSea
		}
		return etherscanLike
	default:
		if strings.Contains(basePath, "better-call.dev") {
			return betterCallDev
		}
		return tzkt
	}
}

type request struct {
	network  networks.Network
	basePath string
	id       string
	tokenID  string
}

type template func(r request) string

// templates has no entry where an explorer cannot show a resource.
var templates = map[provider]map[ResourceKind]template{
	simpleLedger: {
		Account:     addressURL,
		TokenWallet: addressURL,
		NFTContract: tokenContractURL,
		Token:       tokenContractURL,
		Transaction: simpleLedgerTxURL,
	},
	// Only simpleledger's transaction layout is known.
	slpExplorer: {
		Account:     addressURL,
		TokenWallet: addressURL,
		NFTContract: tokenContractURL,
		Token:       tokenContractURL,
	},
	etherscanLike: {
		Account:     addressURL,
		TokenWallet: etherscanTokenWalletURL,
		NFTContract: tokenContractURL,
		Token:       etherscanTokenURL,
		Transaction: etherscanTxURL,
	},
	openSea: {
		Account:     openSeaAccountURL,
		TokenWallet: openSeaTokenWalletURL,
		NFTContract: openSeaCollectionURL,
		Token:       openSeaCollectionURL,
	},
	tzkt: {
		Account:     tezosOperationsURL,
		TokenWallet: tezosTokensURL,
		NFTContract: tezosOperationsURL,
		Token:       tezosOperationsURL,
		Transaction: tzktTxURL,
	},
	betterCallDev: {
		Account:     tezosOperationsURL,
		TokenWallet: tezosTokensURL,
		NFTContract: tezosOperationsURL,
		Token:       tezosOperationsURL,
		Transaction: betterCallDevTxURL,
	},
}

// https://etherscan.io/address/0xd75004A00Ca9d707a4D318B21353dC8aFB151E72
func addressURL(r request) string {
	return fmt.Sprintf("%s/address/%s", r.basePath, r.id)
}

// https://polygonscan.com/token/0x3011810abfec25777a01d5fbef08b2ad12860460
func tokenContractURL(r request) string {
	return fmt.Sprintf("%s/token/%s", r.basePath, r.id)
}

// https://simpleledger.info/#tx/f63da6fedacb67d7f45fb1aab5663e239e0b09596e670c9e97ced7a80c34c24c
func simpleLedgerTxURL(r request) string {
	return fmt.Sprintf("%s/#tx/%s", r.basePath, r.id)
}

// https://etherscan.io/address/0xf8e6480aaed82328e837172d4fb450826ec547cf#tokentxnsErc721
func etherscanTokenWalletURL(r request) string {
	return addressURL(r) + "#tokentxnsErc721"
}

// https://polygonscan.com/token/0x3011810abfec25777a01d5fbef08b2ad12860460/?a=3191
func etherscanTokenURL(r request) string {
	if r.tokenID == "" {
		return tokenContractURL(r)
	}
	return fmt.Sprintf("%s/token/%s/?a=%s", r.basePath, r.id, r.tokenID)
}

func etherscanTxURL(r request) string {
	return fmt.Sprintf("%s/tx/%s", r.basePath, r.id)
}

// https://opensea.io/0xeec4013a607d720989db8f464361cdcf2cb7a7bd
func openSeaAccountURL(r request) string {
	return fmt.Sprintf("%s/%s", r.basePath, r.id)
}

func openSeaTokenWalletURL(r request) string {
	return fmt.Sprintf(
		"%s?search[sortBy]=LISTING_DATE&search[chains][0]=%s",
		openSeaAccountURL(r),
		strings.ToUpper(string(r.network)),
	)
}

// https://opensea.io/0x<contract> would list the tokens held by the contract
// rather than the ones it minted, so search for it instead.
func openSeaCollectionURL(r request) string {
	return fmt.Sprintf("%s/assets?search[query]=%s", r.basePath, r.id)
}

// https://tzkt.io/tz1fRXMLR27hWoD49tdtKunHyfy3CQb5XZst/operations/
func tezosOperationsURL(r request) string {
	return fmt.Sprintf("%s/%s/operations/", r.basePath, r.id)
}

// https://tzkt.io/tz1ZMZddhgxqBMMB5KwSr6L5PDJFQf2nNwbK/tokens
func tezosTokensURL(r request) string {
	return fmt.Sprintf("%s/%s/tokens", r.basePath, r.id)
}

// https://tzkt.io/ooZ2UVPNprv9GfMCwp6JgpUD54G668xrgnkPR2DRCZokfNChDrS
func tzktTxURL(r request) string {
	return fmt.Sprintf("%s/%s", r.basePath, r.id)
}

// https://better-call.dev/mainnet/opg/ooZ2UVPNprv9GfMCwp6JgpUD54G668xrgnkPR2DRCZokfNChDrS
func betterCallDevTxURL(r request) string {
	return fmt.Sprintf("%s/opg/%s", r.basePath, r.id)
}
