// Package report renders scan results as markdown and writes the report file.
package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lamchakchan/envcheck/internal/platform"
	"github.com/lamchakchan/envcheck/internal/suggest"
	"github.com/lamchakchan/envcheck/internal/tools"
)

// FileName is the report written to the working directory.
const FileName = "environment_report.md"

// TimeLayout formats the generation timestamp.
const TimeLayout = "2006-01-02 15:04:05"

const (
	title          = "# 🧰 Environment Check Report"
	missingHeading = "## Missing Tools & Install Commands"
	// AllInstalled is the closing line when nothing is missing.
	AllInstalled = "🎉 All tools are installed! You're ready to code!"
)

// Render returns the markdown report for result. now is formatted in its
// own location; callers pass local time.
func Render(result tools.ScanResult, suggestions suggest.Set, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format(TimeLayout))
	fmt.Fprintf(&b, "## System Info\n**OS:** %s\n\n", result.OS())

	b.WriteString("## Tool Status\n")
	for _, e := range result.Tools() {
		status := "❌ Missing"
		if e.Installed() {
			status = "✅ Installed"
		}
		fmt.Fprintf(&b, "- **%s:** %s\n", e.Name, status)
	}

	missing := result.Missing()
	if len(missing) == 0 {
		fmt.Fprintf(&b, "\n%s\n", AllInstalled)
		return b.String()
	}

	fmt.Fprintf(&b, "\n%s\n", missingHeading)
	for _, name := range missing {
		cmd, ok := suggestions.Get(name)
		if !ok {
			cmd = suggest.ManualInstall
		}
		fmt.Fprintf(&b, "- **%s:** `%s`\n", name, cmd)
	}
	return b.String()
}

// Write creates or truncates FileName in dir and returns the file path.
func Write(dir, content string) (string, error) {
	path := filepath.Join(dir, FileName)
	if err := platform.WriteFileTruncate(path, []byte(content)); err != nil {
		return "", fmt.Errorf("writing %s: %w", FileName, err)
	}
	platform.Logger.Debug("report written", "path", platform.AbsOrSelf(path), "bytes", len(content))
	return path, nil
}

// Confirmation is the line printed once the report exists.
func Confirmation() string {
	return fmt.Sprintf("✅ '%s' has been generated.", FileName)
}
