package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per notable event. Keep message
// short and free of payload data.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] request_id=%s action=%s %s",
		strings.ToUpper(module), strings.TrimSpace(requestID), action, message)
}
