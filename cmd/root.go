// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/explink/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "explink",
	Short: "Print block explorer links for accounts, tokens and transactions",
	Long: `Explink prints canonical links into public block explorers such as
Etherscan, Polygonscan, OpenSea, TzKT, better-call.dev and simpleledger.

Supported networks: bitcoin-cash, ethereum, matic (polygon), tezos, sui and ton.
Sui and ton are known but have no explorer links yet.

The explorer used for a network can be changed with the following env vars,
or with the same keys under "explorers:" in a YAML file passed via --config:
	1. For bitcoin-cash: SLP_EXPLORER_BASEPATH, then EXPLORER_BASEPATH
	2. For ethereum: ETH_EXPLORER_BASEPATH
	3. For matic: MATIC_EXPLORER_BASEPATH
	4. For tezos: TEZOS_EXPLORER_BASEPATH

A --base-path flag always wins over both. Pointing ethereum or matic at
https://opensea.io or tezos at https://better-call.dev switches the link
format to that explorer.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			appUI.Error("Error: %s", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "ethereum", fmt.Sprintf("network of the identifier. Valid values: %s.", quotedNetworkNames()))
	rootCmd.PersistentFlags().StringVarP(&config.BasePath, "base-path", "b", "", "explorer root to use instead of the configured one")
	rootCmd.PersistentFlags().StringVarP(&config.ConfigFile, "config", "c", "", "YAML file with explorer overrides, read before the environment")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "error", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&config.LogEncoding, "log-encoding", "console", "log encoding: console or json")
}
