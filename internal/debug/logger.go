package debug

import (
	"log"
	"os"
)

var enabled = false

func init() {
	enabled = os.Getenv("DEBUG_DASHBOARD") == "true"
	if enabled {
		log.Println("debug dashboard enabled")
	}
}

// IsEnabled reports whether the debug dashboard is active.
func IsEnabled() bool {
	return enabled
}

// LogInfo sends an info-level log to the dashboard.
func LogInfo(message string, metadata map[string]any) {
	if !enabled {
		return
	}
	SendLog("backend", "info", message, metadata)
}

// LogError sends an error-level log to the dashboard.
func LogError(message string, metadata map[string]any) {
	if !enabled {
		return
	}
	SendLog("backend", "error", message, metadata)
}
