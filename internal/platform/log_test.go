package platform

import (
	"testing"

	clog "github.com/charmbracelet/log"
)

func TestSetDebug(t *testing.T) {
	t.Cleanup(func() { SetDebug(false) })

	SetDebug(true)
	if Logger.GetLevel() != clog.DebugLevel {
		t.Errorf("level = %v, want debug", Logger.GetLevel())
	}

	SetDebug(false)
	if Logger.GetLevel() != clog.WarnLevel {
		t.Errorf("level = %v, want warn", Logger.GetLevel())
	}
}
