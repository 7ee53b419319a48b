package shapebox

import (
	"errors"
	"fmt"
)

var (
	// ErrOverlapping is returned when unpausing is refused because shapes
	// intersect.
	ErrOverlapping = errors.New("shapebox: cannot unpause while there are intersecting objects")
	// ErrRunning is returned by paused-only actions while the simulation runs.
	ErrRunning = errors.New("shapebox: pause first")
)

// OverlapError lists the intersecting pairs that blocked an unpause.
type OverlapError struct {
	Pairs []Pair
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%v (%d pairs)", ErrOverlapping, len(e.Pairs))
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlapping
}
