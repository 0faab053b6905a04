package sync

import "fmt"

// LoadError records a failed remote read. "No document yet" is not a
// LoadError; that is the expected new-user branch.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("remote load failed: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError records a failed remote upsert. Local state stays
// authoritative; nothing is rolled back.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("remote write failed: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
