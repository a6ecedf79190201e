package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tranvictor/explink/config"
	"github.com/tranvictor/explink/explorers"
	"github.com/tranvictor/explink/logger"
	"github.com/tranvictor/explink/networks"
	"github.com/tranvictor/explink/ui"
)

var appUI ui.UI = ui.NewTerminalUI()

// reportedError marks an error that was already printed through appUI.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

var (
	appLogger  = zap.NewNop()
	appBuilder = explorers.NewBuilder(config.Env())
)

// setupApp runs before every command. It builds the logger and the link
// builder from the persistent flags.
func setupApp(cmd *cobra.Command, args []string) error {
	l, err := logger.NewLogger(config.Logger())
	if err != nil {
		appUI.Error("Couldn't set up logging: %s", err)
		return reportedError{err}
	}

	source, err := explorerSource()
	if err != nil {
		appUI.Error("Couldn't load config: %s", err)
		return reportedError{err}
	}

	appLogger = l
	appBuilder = explorers.NewBuilder(source, explorers.WithLogger(l))
	return nil
}

// explorerSource layers the --config file, when given, over the process
// environment.
func explorerSource() (config.Source, error) {
	if strings.TrimSpace(config.ConfigFile) == "" {
		return config.Env(), nil
	}
	file, err := config.LoadFile(config.ConfigFile)
	if err != nil {
		return nil, err
	}
	return config.Layered{file, config.Env()}, nil
}

// parseNetwork resolves the --network flag.
func parseNetwork() (networks.Network, error) {
	return parseNetworkName(config.Network)
}

// parseNetworkName prints close matches when name is not a supported name.
func parseNetworkName(name string) (networks.Network, error) {
	network, err := networks.Parse(name)
	if err != nil {
		appUI.Error("Couldn't use network %q: %s", name, err)
		if hints := networks.Suggest(name); len(hints) > 0 {
			appUI.Info("Did you mean: %s?", strings.Join(hints, ", "))
		}
		return "", reportedError{err}
	}
	return network, nil
}

func quotedNetworkNames() string {
	names := networks.GetSupportedNetworkNames()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
