package sync

// Status is the small display-only state the collaborator shows next to
// the document. It is derived from engine state, never stored.
type Status int

const (
	// StatusSynced means no write is pending or in flight and the last
	// remote operation (if any) succeeded.
	StatusSynced Status = iota

	// StatusSyncing means a remote load or write is in flight.
	StatusSyncing

	// StatusError means the last remote operation failed. The error is
	// advisory: local editing continues and the next edit's debounce
	// cycle retries with the then-current state.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSynced:
		return "synced"
	case StatusSyncing:
		return "syncing"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
