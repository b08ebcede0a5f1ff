package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lamchakchan/envcheck/internal/doctor"
)

type scanOutput struct {
	OS       string       `json:"os" yaml:"os"`
	Platform string       `json:"platform" yaml:"platform"`
	Tools    []toolOutput `json:"tools" yaml:"tools"`
}

type toolOutput struct {
	Name       string `json:"name" yaml:"name"`
	Installed  bool   `json:"installed" yaml:"installed"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

func newScanCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Print scan results and install suggestions without writing a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := doctor.Evaluate(cmd.Context(), newScanner())
			return writeScan(cmd.OutOrStdout(), format, res)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}

func toScanOutput(res *doctor.Result) scanOutput {
	out := scanOutput{
		OS:       res.Scan.OS(),
		Platform: res.Family.String(),
	}
	for _, e := range res.Scan.Tools() {
		t := toolOutput{Name: string(e.Name), Installed: e.Installed(), Value: e.Value}
		if cmd, ok := res.Suggestions.Get(e.Name); ok {
			t.Suggestion = cmd
		}
		out.Tools = append(out.Tools, t)
	}
	return out
}

func writeScan(w io.Writer, format string, res *doctor.Result) error {
	out := toScanOutput(res)
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}
