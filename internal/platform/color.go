package platform

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// colorEnabled controls whether ANSI escape codes are emitted.
// Set once by InitColor().
var colorEnabled bool

// InitColor determines whether color output should be enabled.
// It respects NO_COLOR (https://no-color.org/), TERM=dumb, and non-TTY stdout.
func InitColor() {
	if os.Getenv("NO_COLOR") != "" {
		colorEnabled = false
		return
	}
	if os.Getenv("TERM") == "dumb" {
		colorEnabled = false
		return
	}
	colorEnabled = IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ANSI escape codes
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// apply wraps s with the given ANSI code when color is enabled.
func apply(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + ansiReset
}

func Bold(s string) string      { return apply(ansiBold, s) }
func Red(s string) string       { return apply(ansiRed, s) }
func Green(s string) string     { return apply(ansiGreen, s) }
func Yellow(s string) string    { return apply(ansiYellow, s) }
func Cyan(s string) string      { return apply(ansiCyan, s) }
func BoldRed(s string) string   { return apply(ansiBold+ansiRed, s) }
func BoldGreen(s string) string { return apply(ansiBold+ansiGreen, s) }
func BoldCyan(s string) string  { return apply(ansiBold+ansiCyan, s) }

// PrintBanner prints a bold cyan banner line: "\n=== title ===\n"
func PrintBanner(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", BoldCyan("=== "+title+" ==="))
}

// PrintOK prints a bold green OK status: "  [OK] msg\n"
func PrintOK(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s %s\n", BoldGreen("[OK]"), msg)
}

// PrintFail prints a bold red FAIL status: "  [FAIL] msg\n"
func PrintFail(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s %s\n", BoldRed("[FAIL]"), msg)
}

// PrintWarn prints a yellow WARN status: "  [WARN] msg\n"
func PrintWarn(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s %s\n", Yellow("[WARN]"), msg)
}

// PrintCommand prints an indented install command: "      $ cmd\n"
func PrintCommand(w io.Writer, cmd string) {
	fmt.Fprintf(w, "      %s %s\n", Cyan("$"), cmd)
}
