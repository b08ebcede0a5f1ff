package doctor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lamchakchan/envcheck/internal/report"
	"github.com/lamchakchan/envcheck/internal/suggest"
	"github.com/lamchakchan/envcheck/internal/tools"
)

func fakeScanner(osName string, answers map[string]string, paths ...string) *tools.Scanner {
	existing := map[string]bool{}
	for _, p := range paths {
		existing[p] = true
	}
	return &tools.Scanner{
		Prober: tools.ProberFunc(func(_ context.Context, name string, args ...string) (string, bool) {
			out, ok := answers[strings.Join(append([]string{name}, args...), " ")]
			return out, ok
		}),
		Exists: func(p string) bool { return existing[p] },
		OSName: func() string { return osName },
		Tools:  tools.All(),
	}
}

func fixedClock() time.Time {
	return time.Date(2025, 1, 2, 15, 4, 5, 0, time.Local)
}

func TestRunTo_DarwinScenario(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	res, err := RunTo(context.Background(), &out, Options{
		Dir: dir,
		Scanner: fakeScanner("Darwin", map[string]string{
			"python3 --version": "Python 3.11.4",
			"node -v":           "",
			"git --version":     "git version 2.40.0",
		}, "/Applications/PyCharm.app"),
		Now: fixedClock,
	})
	if err != nil {
		t.Fatalf("RunTo() error = %v", err)
	}

	if res.Family != suggest.MacOS {
		t.Errorf("Family = %v, want macOS", res.Family)
	}
	if res.Path != filepath.Join(dir, report.FileName) {
		t.Errorf("Path = %q", res.Path)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)
	if body != res.Report {
		t.Error("file content differs from Result.Report")
	}
	for _, want := range []string{
		"Generated on: 2025-01-02 15:04:05\n",
		"**OS:** Darwin\n",
		"- **Python:** ✅ Installed\n",
		"- **Node.js:** ❌ Missing\n",
		"- **Git:** ✅ Installed\n",
		"- **VS Code:** ❌ Missing\n",
		"- **JetBrains IDE:** ✅ Installed\n",
		"- **Node.js:** `brew install node`\n",
		"- **VS Code:** `brew install --cask visual-studio-code`\n",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("report missing %q", want)
		}
	}

	console := out.String()
	if !strings.Contains(console, "Checking your development environment") {
		t.Error("expected start message on console")
	}
	if !strings.Contains(console, report.Confirmation()) {
		t.Error("expected confirmation on console")
	}
	if !strings.Contains(console, "$ brew install node") {
		t.Errorf("expected install hint on console, got:\n%s", console)
	}
}

func TestRunTo_LinuxAllProbesSucceedNoIDE(t *testing.T) {
	dir := t.TempDir()
	res, err := RunTo(context.Background(), &bytes.Buffer{}, Options{
		Dir: dir,
		Scanner: fakeScanner("Linux", map[string]string{
			"python3 --version": "Python 3.12.1",
			"node -v":           "v20.11.0",
			"git --version":     "git version 2.43.0",
			"code --version":    "1.86.0",
		}),
		Now: fixedClock,
	})
	if err != nil {
		t.Fatalf("RunTo() error = %v", err)
	}

	missing := res.Scan.Missing()
	if len(missing) != 1 || missing[0] != tools.JetBrains {
		t.Fatalf("Missing() = %v, want only the IDE slot", missing)
	}
	if strings.Contains(res.Report, report.AllInstalled) {
		t.Error("an empty IDE slot still counts as missing")
	}
	if !strings.Contains(res.Report, "- **JetBrains IDE:** `Manual installation required.`") {
		t.Errorf("expected manual-install line for the IDE:\n%s", res.Report)
	}
}

func TestRunTo_OverwritesPreviousReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, report.FileName)
	if err := os.WriteFile(path, []byte(strings.Repeat("stale\n", 500)), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := RunTo(context.Background(), &bytes.Buffer{}, Options{
		Dir:     dir,
		Scanner: fakeScanner("Windows", nil),
		Now:     fixedClock,
	})
	if err != nil {
		t.Fatalf("RunTo() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != res.Report {
		t.Error("previous report content was not replaced")
	}
	if !strings.Contains(res.Report, "`winget install Git.Git`") {
		t.Errorf("expected Windows suggestions:\n%s", res.Report)
	}
}

func TestRunTo_WriteFailure(t *testing.T) {
	var out bytes.Buffer
	res, err := RunTo(context.Background(), &out, Options{
		Dir:     filepath.Join(t.TempDir(), "missing"),
		Scanner: fakeScanner("Linux", nil),
		Now:     fixedClock,
	})
	if err == nil {
		t.Fatal("RunTo() expected error when the report cannot be written")
	}
	if res != nil {
		t.Error("RunTo() should not return a result on write failure")
	}
	if strings.Contains(out.String(), report.Confirmation()) {
		t.Error("confirmation must not be printed when the write fails")
	}
}

func TestEvaluate_IdempotentReports(t *testing.T) {
	scanner := fakeScanner("Darwin", map[string]string{"git --version": "git version 2.40.0"})
	a := Evaluate(context.Background(), scanner)
	b := Evaluate(context.Background(), scanner)

	ra := report.Render(a.Scan, a.Suggestions, fixedClock())
	rb := report.Render(b.Scan, b.Suggestions, fixedClock())
	if ra != rb {
		t.Error("two runs over the same machine state should render identically")
	}
}
