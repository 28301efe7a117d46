package shared

const (
	// MaxLoadNumerator and MaxLoadDenominator encode the fixed peak load
	// factor of 7/8 that the table grows at. Unlike the teacher's
	// Hopscotch/RobinHood maps, the load factor here is not an exposed
	// knob: the SwissTable-style control bytes only work out their
	// probabilistic probe-length bound at a fixed, known load.
	MaxLoadNumerator   = 7
	MaxLoadDenominator = 8

	// DefaultCapacity is the minimum and default slot count: a capacity
	// hint of 0 or anything under this rounds up to it.
	DefaultCapacity = 8
)
