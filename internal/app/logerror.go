package app

import (
	"errors"
	"log"
)

// logError logs a failed call followed by each error it wraps
//
// Wrapping with github.com/pkg/errors adds layers that print the same message,
// those are only logged once.
func logError(logger *log.Logger, methodName string, err error) {
	logger.Printf("%s() failed: %v", methodName, err)
	prev := err.Error()
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		msg := cause.Error()
		if msg == prev {
			continue
		}
		logger.Printf("  Caused by: %s", msg)
		prev = msg
	}
}
