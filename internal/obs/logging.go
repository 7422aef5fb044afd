// Package obs provides debug logging utilities for proofedit.
package obs

import "log"

// DebugEnabled controls whether Debug() produces output.
// Set via the -debug flag of the proofedit and proofeditd commands.
var DebugEnabled bool

// Debug logs a message only when DebugEnabled is true.
func Debug(format string, args ...any) {
	if DebugEnabled {
		log.Printf("DEBUG: "+format, args...)
	}
}
