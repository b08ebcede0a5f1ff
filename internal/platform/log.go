package platform

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared diagnostic logger. It writes to stderr so that
// stdout only carries the user-facing lines.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Level:           clog.WarnLevel,
	Prefix:          "envcheck",
})

// SetDebug switches the shared logger between debug and warn level.
func SetDebug(on bool) {
	if on {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.WarnLevel)
}
