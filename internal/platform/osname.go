package platform

import (
	"runtime"
	"strings"
)

// OSName returns the operating system identifier in the form reported by
// uname-style tooling: "Darwin", "Linux", "Windows", "FreeBSD" and so on.
func OSName() string {
	return osNameFor(runtime.GOOS)
}

func osNameFor(goos string) string {
	switch goos {
	case "darwin", "ios":
		return "Darwin"
	case "linux", "android":
		return "Linux"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	case "dragonfly":
		return "DragonFly"
	case "solaris", "illumos":
		return "SunOS"
	case "aix":
		return "AIX"
	case "":
		return ""
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}
