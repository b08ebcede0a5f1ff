package tools

import (
	"context"
	"time"

	"github.com/lamchakchan/envcheck/internal/platform"
)

// Entry is one row of a ScanResult.
type Entry struct {
	Name  ToolName
	Value string
}

// Installed reports whether the probe produced a usable value.
func (e Entry) Installed() bool { return e.Value != "" }

// ScanResult maps each ToolName to its detected value, in probe order.
// It is not modified after the scan completes.
type ScanResult struct {
	entries []Entry
}

// NewScanResult builds a result from entries. Later duplicates of a name
// replace the earlier value but keep its position.
func NewScanResult(entries ...Entry) ScanResult {
	out := make([]Entry, 0, len(entries))
	index := make(map[ToolName]int, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Name]; ok {
			out[i].Value = e.Value
			continue
		}
		index[e.Name] = len(out)
		out = append(out, e)
	}
	return ScanResult{entries: out}
}

// Entries returns a copy of every entry, OS included.
func (r ScanResult) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Get returns the value recorded for name and whether name was scanned.
func (r ScanResult) Get(name ToolName) (string, bool) {
	for _, e := range r.entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// OS returns the operating system identifier.
func (r ScanResult) OS() string {
	v, _ := r.Get(OS)
	return v
}

// Tools returns the non-OS entries in probe order.
func (r ScanResult) Tools() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Name != OS {
			out = append(out, e)
		}
	}
	return out
}

// Installed returns the non-OS tools with a value.
func (r ScanResult) Installed() []ToolName {
	var out []ToolName
	for _, e := range r.Tools() {
		if e.Installed() {
			out = append(out, e.Name)
		}
	}
	return out
}

// Missing returns the non-OS tools without a value. Together with
// Installed it partitions Tools.
func (r ScanResult) Missing() []ToolName {
	var out []ToolName
	for _, e := range r.Tools() {
		if !e.Installed() {
			out = append(out, e.Name)
		}
	}
	return out
}

// Scanner probes the local machine for every registered tool.
type Scanner struct {
	Prober Prober
	Exists func(path string) bool
	OSName func() string
	Tools  []Tool
}

// NewScanner returns a Scanner wired to the real machine.
func NewScanner() *Scanner {
	return &Scanner{
		Prober: ProberFunc(platform.Probe),
		Exists: platform.FileExists,
		OSName: platform.OSName,
		Tools:  All(),
	}
}

// Scan runs each probe one after another and returns the result.
func (s *Scanner) Scan(ctx context.Context) ScanResult {
	entries := make([]Entry, 0, len(s.Tools)+1)
	entries = append(entries, Entry{Name: OS, Value: s.OSName()})

	for _, t := range s.Tools {
		start := time.Now()
		v := t.Detect(ctx, s.Prober, s.Exists)
		platform.Logger.Debug("scanned tool", "tool", t.Name, "value", v, "elapsed", time.Since(start))
		entries = append(entries, Entry{Name: t.Name, Value: v})
	}
	return NewScanResult(entries...)
}
