// Package quotes implements the quote providers: an external fetcher process, Yahoo Finance and EODHD.
package quotes

import (
	"errors"
	"fmt"
)

// ErrSymbolNotFound is wrapped by every provider error that means the symbol did not resolve
var ErrSymbolNotFound = errors.New("symbol not found or data unavailable")

// ScriptError is a non-zero exit of the quote fetcher process
type ScriptError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ScriptError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("quote fetcher %s exited with code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("quote fetcher %s exited with code %d: %s", e.Command, e.ExitCode, e.Stderr)
}

func (e *ScriptError) Unwrap() error {
	return ErrSymbolNotFound
}
