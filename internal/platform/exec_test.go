package platform

import (
	"context"
	"testing"
	"time"
)

func TestOutput(t *testing.T) {
	out, err := Output("echo", "hello")
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("Output() = %q, want %q", out, "hello")
	}
}

func TestOutput_TrimsWhitespace(t *testing.T) {
	out, err := Output("printf", "  padded  \n\n")
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if out != "padded" {
		t.Errorf("Output() = %q, want %q", out, "padded")
	}
}

func TestOutput_CommandNotFound(t *testing.T) {
	_, err := Output("nonexistent-binary-xyz-12345")
	if err == nil {
		t.Error("Output() expected error for missing command")
	}
}

func TestOutput_NonZeroExit(t *testing.T) {
	_, err := Output("false")
	if err == nil {
		t.Error("Output(false) expected error")
	}
}

func TestExists(t *testing.T) {
	if !Exists("sh") {
		t.Error("Exists(sh) = false, want true")
	}
	if Exists("nonexistent-binary-xyz-12345") {
		t.Error("Exists(nonexistent) = true, want false")
	}
}

func TestProbe_Success(t *testing.T) {
	out, ok := Probe(context.Background(), "sh", "-c", "echo '  Python 3.11.4  '")
	if !ok {
		t.Fatal("Probe() ok = false, want true")
	}
	if out != "Python 3.11.4" {
		t.Errorf("Probe() = %q, want %q", out, "Python 3.11.4")
	}
}

func TestProbe_NonZeroExitIsAbsent(t *testing.T) {
	out, ok := Probe(context.Background(), "sh", "-c", "echo partial; exit 3")
	if ok {
		t.Error("Probe() ok = true for non-zero exit")
	}
	if out != "" {
		t.Errorf("Probe() = %q, want empty output on failure", out)
	}
}

func TestProbe_MissingBinaryIsAbsent(t *testing.T) {
	out, ok := Probe(context.Background(), "nonexistent-binary-xyz-12345", "--version")
	if ok || out != "" {
		t.Errorf("Probe() = (%q, %v), want (\"\", false)", out, ok)
	}
}

func TestProbe_NoShellInterpretation(t *testing.T) {
	out, ok := Probe(context.Background(), "echo", "$HOME", "|", "cat")
	if !ok {
		t.Fatal("Probe() ok = false, want true")
	}
	if out != "$HOME | cat" {
		t.Errorf("Probe() = %q, want arguments passed through verbatim", out)
	}
}

func TestProbe_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, ok := Probe(ctx, "sleep", "5")
	if ok {
		t.Error("Probe() ok = true for a command killed by its context")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("Probe() took %v, expected the context to stop it", elapsed)
	}
}
