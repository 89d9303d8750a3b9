//go:build !unix

package main

import "os"

// Best-effort fallback for non-Unix platforms: only output written through
// os.Stdout/os.Stderr is captured, not runtime-level panics.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
