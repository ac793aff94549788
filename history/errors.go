package history

import "errors"

// ErrNegativeTime indicates LatticeAt was called with a negative time.
var ErrNegativeTime = errors.New("history: time must be >= 0")

// ErrNoStepsYet indicates a recording-state query was made before the
// simulation has ever advanced.
var ErrNoStepsYet = errors.New("history: recording queried before any step")
