package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lhci/lhci/internal/logging"
	"github.com/lhci/lhci/internal/rcfile"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved lighthouserc options",
	Long: `Resolves the project's lighthouserc file and prints the flattened
options as JSON.

An explicit --config path is used as-is. Otherwise the file is
auto-detected by walking up from the working directory, unless detection
is disabled with --no-lighthouserc or LHCI_NO_LIGHTHOUSERC.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	// The resolver scans the raw argument list for the opt-out signal. The
	// bound flag covers invocations where the argument list is synthetic,
	// e.g. when the command is driven programmatically.
	argv := os.Args[1:]
	if noLighthouseRc {
		argv = append(argv, "--no-lighthouserc")
	}

	path, ok := rcfile.ResolveRcFilePath(rcFilePath, cwd, argv, rcfile.ProcessEnviron())
	if !ok {
		logging.Debug().Msg("no rc file resolved")
		fmt.Fprintln(cmd.OutOrStdout(), "{}")
		return nil
	}

	logging.Debug().Str("path", path).Msg("resolved rc file")

	options, err := rcfile.LoadAndParseRcFile(path)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(options, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
