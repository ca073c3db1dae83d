package timing

import "time"

// Default timing range, inclusive, in units
const (
	DefaultMinUnits = 1
	DefaultMaxUnits = 10
	DefaultUnit     = time.Second
)
