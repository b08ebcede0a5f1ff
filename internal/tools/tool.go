// Package tools defines the fixed set of development tools envcheck looks
// for and the scanner that probes the local machine for each of them.
package tools

import (
	"context"
	"path"
	"strings"
)

// ToolName identifies one entry of a scan. The string value is the label
// used in reports.
type ToolName string

const (
	OS        ToolName = "OS"
	Python    ToolName = "Python"
	NodeJS    ToolName = "Node.js"
	Git       ToolName = "Git"
	VSCode    ToolName = "VS Code"
	JetBrains ToolName = "JetBrains IDE"
)

// Names returns every ToolName in probe order, OS first.
func Names() []ToolName {
	return []ToolName{OS, Python, NodeJS, Git, VSCode, JetBrains}
}

// Valid reports whether n belongs to the closed set returned by Names.
func (n ToolName) Valid() bool {
	for _, known := range Names() {
		if n == known {
			return true
		}
	}
	return false
}

func (n ToolName) String() string { return string(n) }

// Prober runs a single command and reports its trimmed stdout. ok is false
// when the command could not run or exited non-zero.
type Prober interface {
	Probe(ctx context.Context, name string, args ...string) (out string, ok bool)
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(ctx context.Context, name string, args ...string) (string, bool)

// Probe calls f.
func (f ProberFunc) Probe(ctx context.Context, name string, args ...string) (string, bool) {
	return f(ctx, name, args...)
}

// Tool describes how one development tool is detected.
type Tool struct {
	Name ToolName
	// Commands are tried in order; the first non-empty output wins.
	Commands [][]string
	// Paths are checked for existence when no command is configured.
	// The base names of all matches are joined with ", ".
	Paths []string
}

// Detect returns the value reported for t, or "" when t is absent.
func (t Tool) Detect(ctx context.Context, p Prober, exists func(string) bool) string {
	for _, argv := range t.Commands {
		if len(argv) == 0 {
			continue
		}
		if out, ok := p.Probe(ctx, argv[0], argv[1:]...); ok && out != "" {
			return out
		}
	}
	if len(t.Paths) == 0 {
		return ""
	}
	var found []string
	for _, candidate := range t.Paths {
		if exists(candidate) {
			found = append(found, path.Base(candidate))
		}
	}
	return strings.Join(found, ", ")
}
