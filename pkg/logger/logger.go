package logger

import (
	"fmt"
	"log"
	"os"
)

// New returns a stderr-backed logger with component prefix, for CLI
// bootstrap messages emitted before the structured logger exists.
func New(component string) *log.Logger {
	prefix := fmt.Sprintf("[%s] ", component)
	return log.New(os.Stderr, prefix, log.LstdFlags)
}
