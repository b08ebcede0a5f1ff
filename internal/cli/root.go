// Package cli wires the envcheck commands.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lamchakchan/envcheck/internal/doctor"
	"github.com/lamchakchan/envcheck/internal/platform"
	"github.com/lamchakchan/envcheck/internal/tools"
)

// newScanner builds the machine scanner; tests replace it with a fake.
var newScanner = tools.NewScanner

func newRootCmd(version string) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "envcheck",
		Short: "Check for common development tools and write environment_report.md",
		Long: "envcheck probes the local machine for Python, Node.js, Git, VS Code and\n" +
			"JetBrains IDEs, then writes environment_report.md to the current directory\n" +
			"with install commands for anything missing.",
		Args:    cobra.NoArgs,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			platform.SetDebug(debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := doctor.RunTo(cmd.Context(), cmd.OutOrStdout(), doctor.Options{Scanner: newScanner()})
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("envcheck {{.Version}}\n")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log probe details to stderr")

	root.AddCommand(newScanCmd(), newViewCmd(), newVersionCmd(version))
	return root
}

// Execute runs the CLI with os.Args. Interrupts cancel running probes.
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd(version).ExecuteContext(ctx)
}
