package cmd

import (
	"errors"
	"fmt"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tranvictor/explink/common"
	"github.com/tranvictor/explink/config"
	"github.com/tranvictor/explink/explorers"
	"github.com/tranvictor/explink/networks"
)

// printLink builds one link and prints it on its own line. Shape problems
// with EVM identifiers are reported as warnings only; the link is still
// printed.
func printLink(kind explorers.ResourceKind, id string, tokenID string) error {
	network, err := parseNetwork()
	if err != nil {
		return err
	}

	if networks.IsEVM(network) {
		warnIfNotEVMShaped(kind, id)
	}

	if kind == explorers.Token && !explorers.IsTokenURLSupported(network) {
		appUI.Warn("%s explorers have no token pages, printing the contract link", network)
	}

	link, err := appBuilder.URL(network, kind, id, tokenID, config.BasePath)
	if err != nil {
		if errors.Is(err, common.ErrUnsupportedOperation) {
			appUI.Info("Pass --base-path to use another explorer, see `explink network list`")
		}
		appUI.Error("Couldn't build the %s link: %s", kind, err)
		return reportedError{err}
	}
	if link == "" {
		appUI.Warn("No %s link: the identifier is empty", kind)
		return nil
	}

	appLogger.Debug("Built explorer link",
		zap.Stringer("network", network),
		zap.Stringer("kind", kind),
		zap.String("link", link))
	appUI.Info("%s", link)
	return nil
}

func warnIfNotEVMShaped(kind explorers.ResourceKind, id string) {
	id = strings.TrimSpace(id)
	if kind == explorers.Transaction {
		raw, err := hexutil.Decode(id)
		if err != nil || len(raw) != ethcommon.HashLength {
			appUI.Warn("%s doesn't look like a transaction hash", id)
		}
		return
	}
	if id != "" && !ethcommon.IsHexAddress(id) {
		appUI.Warn("%s doesn't look like an address", id)
	}
}

var accountCmd = &cobra.Command{
	Use:   "account [address]",
	Short: "Print the explorer link of an account",
	Long: `Print the explorer link of an account. An empty address prints no link.
Example:
	explink account 0xc0ffee254729296a45a3885639ac7e10f9d54979
	explink account -k tezos tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLink(explorers.Account, firstArg(args), "")
	},
}

var walletCmd = &cobra.Command{
	Use:   "wallet [address]",
	Short: "Print the explorer link listing the tokens an account holds",
	Long:  ``,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLink(explorers.TokenWallet, firstArg(args), "")
	},
}

var contractCmd = &cobra.Command{
	Use:   "contract <address>",
	Short: "Print the explorer link of an NFT or token contract",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLink(explorers.NFTContract, args[0], "")
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token <address> [token id]",
	Short: "Print the explorer link of a token",
	Long: `Print the explorer link of a token. Without a token id the contract link is
printed instead. Not available on bitcoin-cash and tezos.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID := ""
		if len(args) > 1 {
			tokenID = args[1]
		}
		return printLink(explorers.Token, args[0], tokenID)
	},
}

var txCmd = &cobra.Command{
	Use:     "tx <hash>",
	Aliases: []string{"transaction"},
	Short:   "Print the explorer link of a transaction",
	Long:    ``,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printLink(explorers.Transaction, args[0], "")
	},
}

var linkCmd = &cobra.Command{
	Use:   "link <kind> [id] [token id]",
	Short: "Print the explorer link of any resource kind",
	Long: `Print the explorer link of a resource given its kind by name. Valid kinds:
account, token-wallet, nft-contract, token and transaction.
Example:
	explink link nft-contract 0x3011810abfec25777a01d5fbef08b2ad12860460 -k polygon`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := explorers.ParseResourceKind(args[0])
		if err != nil {
			appUI.Error("Couldn't use kind %q: %s", args[0], err)
			return reportedError{err}
		}
		tokenID := ""
		if len(args) > 2 {
			if kind != explorers.Token {
				err := fmt.Errorf("a token id only applies to token links: %w", common.ErrInvalidArgument)
				appUI.Error("%s", err)
				return reportedError{err}
			}
			tokenID = args[2]
		}
		return printLink(kind, firstArg(args[1:]), tokenID)
	},
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func init() {
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(contractCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(linkCmd)
}
