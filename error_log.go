package reactive

import "sync"

// errorLog keeps the most recent errors, oldest first, up to a fixed limit.
// A nil *errorLog is valid and records nothing.
type errorLog struct {
	mu    sync.RWMutex
	limit int
	errs  []error
}

// newErrorLog returns nil when limit is not positive.
func newErrorLog(limit int) *errorLog {
	if limit <= 0 {
		return nil
	}
	return &errorLog{limit: limit, errs: make([]error, 0, limit)}
}

func (l *errorLog) record(err error) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.errs) == l.limit {
		copy(l.errs, l.errs[1:])
		l.errs = l.errs[:l.limit-1]
	}
	l.errs = append(l.errs, err)
}

func (l *errorLog) reset() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	clear(l.errs)
	l.errs = l.errs[:0]
}

func (l *errorLog) snapshot() []error {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.errs) == 0 {
		return nil
	}
	out := make([]error, len(l.errs))
	copy(out, l.errs)
	return out
}
