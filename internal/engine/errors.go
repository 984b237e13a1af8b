package engine

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors raised at the engine boundary. The formulas themselves never
// fail; these only surface while turning user text into StrategyInputs.
var (
	// ErrUnknownRegion indicates a region name outside the fixed region set.
	ErrUnknownRegion = constError("unknown region")

	// ErrUnknownMetric indicates an achievement references a metric that
	// DerivedMetrics does not expose.
	ErrUnknownMetric = constError("unknown metric")

	// ErrUnknownPhase indicates a roadmap phase label that does not exist.
	ErrUnknownPhase = constError("unknown roadmap phase")
)
