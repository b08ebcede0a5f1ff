package cli

import (
	"github.com/spf13/cobra"

	"github.com/lamchakchan/envcheck/internal/doctor"
	"github.com/lamchakchan/envcheck/internal/tui"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Write the report, then browse it in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := doctor.RunTo(cmd.Context(), cmd.OutOrStdout(), doctor.Options{Scanner: newScanner()})
			if err != nil {
				return err
			}
			return tui.ShowReport(cmd.OutOrStdout(), "Environment Report", res.Report)
		},
	}
}
