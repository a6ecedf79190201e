package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/tranvictor/explink/currencies"
	"github.com/tranvictor/explink/networks"
	"github.com/tranvictor/explink/ui"
)

var listCurrencyCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the known currencies grouped by network",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		groups := [][][]string{}
		for _, c := range networks.GetSupportedChains() {
			byCode := currencies.ForNetwork(c.GetNetwork())
			codes := make([]string, 0, len(byCode))
			for code := range byCode {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			rows := [][]string{}
			for _, code := range codes {
				cur := byCode[code]
				rows = append(rows, []string{
					c.GetName(),
					cur.Code,
					cur.Symbol,
					cur.DisplayText,
					appUI.Style(ui.YesNo(cur.NativeToken)),
				})
			}
			if len(rows) > 0 {
				groups = append(groups, rows)
			}
		}
		appUI.TableWithGroups(
			[]string{"Network", "Code", "Symbol", "Display", "Native"},
			groups,
		)
	},
}

var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "Show currency reference data",
	Long:  ``,
}

func init() {
	currencyCmd.AddCommand(listCurrencyCmd)
	rootCmd.AddCommand(currencyCmd)
}
