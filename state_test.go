package reactive

import "testing"

func TestState_String(t *testing.T) {
	cases := map[State]string{
		StateWaiting:    "waiting",
		StateResolved:   "resolved",
		StateStale:      "stale",
		StateUnresolved: "unresolved",
		State(999):      "unknown",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}

func TestState_ZeroValueIsWaiting(t *testing.T) {
	var s State
	if s != StateWaiting {
		t.Errorf("expected zero State to be waiting, got %s", s)
	}
}
