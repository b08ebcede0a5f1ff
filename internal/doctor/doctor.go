// Package doctor runs the environment check end to end: scan the machine,
// resolve install suggestions for what is missing, and write the markdown
// report to the working directory.
package doctor

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lamchakchan/envcheck/internal/platform"
	"github.com/lamchakchan/envcheck/internal/report"
	"github.com/lamchakchan/envcheck/internal/suggest"
	"github.com/lamchakchan/envcheck/internal/tools"
)

// Result is everything one run produced.
type Result struct {
	Scan        tools.ScanResult
	Family      suggest.PlatformFamily
	Suggestions suggest.Set
	Report      string
	Path        string
}

// Options overrides the machine-facing parts of a run. Zero values use
// the real machine, the working directory and the local clock.
type Options struct {
	Dir     string
	Scanner *tools.Scanner
	Now     func() time.Time
}

// Run executes the check, printing to os.Stdout.
func Run(ctx context.Context) (*Result, error) {
	return RunTo(ctx, os.Stdout, Options{})
}

// RunTo executes the check, writing console output to w. Probe failures
// only show up as missing tools; a failure to write the report is returned.
func RunTo(ctx context.Context, w io.Writer, opts Options) (*Result, error) {
	fmt.Fprintln(w, "🔍 Checking your development environment...")

	res := Evaluate(ctx, opts.Scanner)
	printStatus(w, res)

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	res.Report = report.Render(res.Scan, res.Suggestions, now())

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	path, err := report.Write(dir, res.Report)
	if err != nil {
		return nil, err
	}
	res.Path = path

	fmt.Fprintf(w, "\n%s\n\n", platform.BoldGreen(report.Confirmation()))
	return res, nil
}

// Evaluate scans the machine and resolves suggestions without touching
// the filesystem or the console.
func Evaluate(ctx context.Context, scanner *tools.Scanner) *Result {
	if scanner == nil {
		scanner = tools.NewScanner()
	}
	scan := scanner.Scan(ctx)
	family := suggest.FamilyOf(scan.OS())
	platform.Logger.Debug("scan complete", "os", scan.OS(), "family", family, "missing", len(scan.Missing()))

	return &Result{
		Scan:        scan,
		Family:      family,
		Suggestions: suggest.Suggest(family, scan.Missing()),
	}
}

// printStatus writes a console summary of res.
func printStatus(w io.Writer, res *Result) {
	platform.PrintBanner(w, "System: "+res.Scan.OS())
	for _, e := range res.Scan.Tools() {
		if e.Installed() {
			pass(w, fmt.Sprintf("%s: %s", e.Name, e.Value))
			continue
		}
		cmd, _ := res.Suggestions.Get(e.Name)
		if cmd == "" || cmd == suggest.ManualInstall {
			warn(w, fmt.Sprintf("%s: not found (manual installation required)", e.Name))
			continue
		}
		fail(w, fmt.Sprintf("%s: not found", e.Name))
		platform.PrintCommand(w, cmd)
	}
}

func pass(w io.Writer, msg string) {
	platform.PrintOK(w, msg)
}

func fail(w io.Writer, msg string) {
	platform.PrintFail(w, msg)
}

func warn(w io.Writer, msg string) {
	platform.PrintWarn(w, msg)
}
