package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/explink/config"
	"github.com/tranvictor/explink/currencies"
	"github.com/tranvictor/explink/networks"
	"github.com/tranvictor/explink/ui"
)

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		rows := [][]string{}
		for _, c := range networks.GetSupportedChains() {
			rows = append(rows, []string{
				c.GetName(),
				c.GetLabel(),
				strings.Join(c.GetAlternativeNames(), ", "),
				appUI.Style(ui.YesNo(c.IsEVM())),
				c.GetNativeTokenSymbol(),
				defaultExplorer(c),
			})
		}
		appUI.Table(
			[]string{"Name", "Label", "Alternative names", "EVM", "Native token", "Default explorer"},
			rows,
		)
	},
}

var showNetworkCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one network, its explorer settings and its currencies",
	Long: `Show one network. Without a name the --network flag is used.
Example:
	explink network show polygon`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := firstArg(args)
		if name == "" {
			name = config.Network
		}
		network, err := parseNetworkName(name)
		if err != nil {
			return err
		}
		chain, err := networks.GetChain(string(network))
		if err != nil {
			return err
		}

		appUI.Section(chain.GetLabel())
		appUI.KeyValue([][2]string{
			{"Name", chain.GetName()},
			{"Alternative names", strings.Join(chain.GetAlternativeNames(), ", ")},
			{"EVM", appUI.Style(ui.YesNo(chain.IsEVM()))},
			{"Native token", chain.GetNativeTokenSymbol()},
			{"Default explorer", defaultExplorer(chain)},
		})

		base, err := appBuilder.ResolveBasePath(network, config.BasePath)
		if err != nil {
			appUI.Warn("No explorer links on %s", network)
		} else {
			appUI.Success("Links use %s", base)
		}

		if keys := chain.GetExplorerVariableNames(); len(keys) > 0 {
			appUI.Info("Explorer config keys, first set wins:")
			w := appUI.Indent().Writer()
			for _, key := range keys {
				fmt.Fprintln(w, key)
			}
		}

		byCode := currencies.ForNetwork(network)
		if len(byCode) == 0 {
			return nil
		}
		codes := make([]string, 0, len(byCode))
		for code := range byCode {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		rows := [][]string{}
		for _, code := range codes {
			cur := byCode[code]
			rows = append(rows, []string{
				cur.Code,
				cur.Symbol,
				cur.DisplayText,
				appUI.Style(ui.YesNo(cur.NativeToken)),
			})
		}
		appUI.Section("Currencies")
		appUI.Table([]string{"Code", "Symbol", "Display", "Native"}, rows)
		return nil
	},
}

func defaultExplorer(c networks.Chain) string {
	if explorer := c.GetDefaultExplorerURL(); explorer != "" {
		return explorer
	}
	return appUI.Style(ui.StyledText{Text: "none", Severity: ui.SeverityWarn})
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show the networks that explink supports",
	Long:  ``,
}

func init() {
	networkCmd.AddCommand(listNetworkCmd)
	networkCmd.AddCommand(showNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
