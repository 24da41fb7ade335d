// Package logging wraps the standard logger the way up.go's main() does:
// discard by default, write to a debug file when requested.
package logging

import (
	"io"
	"log"
	"os"
)

// Init discards all log output unless debug is true, in which case it
// creates path and routes the standard logger to it (grounded on up.go's
// `if *debugMode { debug, err := os.Create("up.debug"); ... }`).
func Init(debug bool, path string) error {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}
