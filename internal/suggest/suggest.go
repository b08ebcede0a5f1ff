// Package suggest maps missing tools to the install command for the
// detected platform family.
package suggest

import (
	"fmt"

	"github.com/lamchakchan/envcheck/internal/tools"
)

// ManualInstall is suggested for tools with no entry in the platform table.
const ManualInstall = "Manual installation required."

// PlatformFamily is the coarse OS classification used to pick a table.
type PlatformFamily int

const (
	Linux PlatformFamily = iota // Linux and anything unrecognized
	MacOS
	Windows
)

// String returns the family name.
func (f PlatformFamily) String() string {
	switch f {
	case Linux:
		return "Linux"
	case MacOS:
		return "macOS"
	case Windows:
		return "Windows"
	}
	return fmt.Sprintf("PlatformFamily(%d)", int(f))
}

// FamilyOf classifies an OS identifier by exact match against "Windows"
// and "Darwin". Every other identifier, including "", is Linux.
func FamilyOf(osID string) PlatformFamily {
	switch osID {
	case "Windows":
		return Windows
	case "Darwin":
		return MacOS
	default:
		return Linux
	}
}

var tables = map[PlatformFamily]map[tools.ToolName]string{
	Windows: {
		tools.Python: "winget install Python.Python.3",
		tools.NodeJS: "winget install OpenJS.NodeJS",
		tools.Git:    "winget install Git.Git",
		tools.VSCode: "winget install Microsoft.VisualStudioCode",
	},
	MacOS: {
		tools.Python: "brew install python",
		tools.NodeJS: "brew install node",
		tools.Git:    "brew install git",
		tools.VSCode: "brew install --cask visual-studio-code",
	},
	Linux: {
		tools.Python: "sudo apt install python3 -y",
		tools.NodeJS: "sudo apt install nodejs npm -y",
		tools.Git:    "sudo apt install git -y",
		tools.VSCode: "sudo snap install code --classic",
	},
}

// Lookup returns the install command for tool on family, or ManualInstall.
func Lookup(family PlatformFamily, tool tools.ToolName) string {
	table, ok := tables[family]
	if !ok {
		table = tables[Linux]
	}
	if cmd, ok := table[tool]; ok {
		return cmd
	}
	return ManualInstall
}

// Suggestion is the resolved install command for one missing tool.
type Suggestion struct {
	Tool    tools.ToolName
	Command string
}

// Set holds one Suggestion per missing tool, in the order given to Suggest.
type Set []Suggestion

// Get returns the command suggested for tool.
func (s Set) Get(tool tools.ToolName) (string, bool) {
	for _, sg := range s {
		if sg.Tool == tool {
			return sg.Command, true
		}
	}
	return "", false
}

// Suggest resolves an install command for every missing tool. Repeated
// names are kept once.
func Suggest(family PlatformFamily, missing []tools.ToolName) Set {
	out := make(Set, 0, len(missing))
	seen := make(map[tools.ToolName]bool, len(missing))
	for _, tool := range missing {
		if seen[tool] {
			continue
		}
		seen[tool] = true
		out = append(out, Suggestion{Tool: tool, Command: Lookup(family, tool)})
	}
	return out
}
