// Package wsdllog is the CLI's one logging call site. The parser and
// emitter packages never log; they return errors (see soap.Error) and
// let the caller decide how to present them, per the generator's
// "prints nothing on success" contract.
package wsdllog

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Fatal logs err as a structured failure and exits the process with a
// non-zero status.
func Fatal(msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
