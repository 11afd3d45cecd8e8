package reactive

// State represents the resolution state of a Feed.
type State int32

const (
	// StateWaiting indicates the Feed has not processed any value yet.
	StateWaiting State = iota

	// StateResolved indicates the last change was pushed to the target.
	StateResolved

	// StateStale indicates the last change was rejected. The value pushed
	// before it is still the current one.
	StateStale

	// StateUnresolved indicates the first change was rejected and nothing
	// has ever been pushed. The Feed keeps watching for a valid value.
	StateUnresolved
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateResolved:
		return "resolved"
	case StateStale:
		return "stale"
	case StateUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}
