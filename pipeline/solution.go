package pipeline

import (
	"errors"

	"github.com/kinsondigital/reactive"
	"github.com/kinsondigital/reactive/notify"
)

// ErrSolutionNotLoaded is returned when the solution is read before it
// was pushed.
var ErrSolutionNotLoaded = errors.New("solution not loaded")

// SolutionAccessor gives build steps access to the solution handle once
// something has pushed it.
type SolutionAccessor struct {
	lazy *reactive.Lazy[notify.Solution]
}

// NewSolutionAccessor subscribes to source.
func NewSolutionAccessor(source reactive.Reactable[notify.Solution]) (*SolutionAccessor, error) {
	lazy, err := reactive.NewLazy(source)
	if err != nil {
		return nil, err
	}
	return &SolutionAccessor{lazy: lazy}, nil
}

// Solution returns the first solution pushed, or ErrSolutionNotLoaded.
func (a *SolutionAccessor) Solution() (notify.Solution, error) {
	s, ok := a.lazy.Value()
	if !ok {
		return notify.Solution{}, ErrSolutionNotLoaded
	}
	return s, nil
}

// Loaded reports whether the solution has been pushed.
func (a *SolutionAccessor) Loaded() bool {
	return a.lazy.Loaded()
}

// Dispose releases the subscription.
func (a *SolutionAccessor) Dispose() {
	a.lazy.Dispose()
}
