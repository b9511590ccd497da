package engine

import "fmt"

// Error taxonomy for the resolution/acquisition pipeline.
//
// SearchError and ProcessError/AcquisitionError are surfaced to the MCP caller
// as soft tool errors (message + IsError flag). ResolutionError for a
// present-but-unusable upstream item is re-raised as a hard error so a
// malformed API response is distinguishable from an empty one.

// SearchError wraps any transport or upstream failure of the search API.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string { return fmt.Sprintf("search failed: %v", e.Err) }
func (e *SearchError) Unwrap() error { return e.Err }

// ResolutionError means a candidate or artifact could not be resolved to a
// usable identifier or path: the upstream item had no video ID, or neither
// resolution stage could locate the downloaded file.
type ResolutionError struct {
	Reason string
}

func (e *ResolutionError) Error() string { return e.Reason }

// ProcessError means an external process could not be spawned or exited
// non-zero. Stderr carries the tail of the captured error stream.
type ProcessError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// AcquisitionError wraps a failure of the download step itself, as opposed to
// a ResolutionError where the download likely succeeded but the artifact path
// is unknown.
type AcquisitionError struct {
	Err error
}

func (e *AcquisitionError) Error() string { return fmt.Sprintf("audio download failed: %v", e.Err) }
func (e *AcquisitionError) Unwrap() error { return e.Err }

// LaunchError wraps a failure of the OS browser-open command.
type LaunchError struct {
	URL string
	Err error
}

func (e *LaunchError) Error() string { return fmt.Sprintf("open %s: %v", e.URL, e.Err) }
func (e *LaunchError) Unwrap() error { return e.Err }
