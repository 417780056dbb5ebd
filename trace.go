package simplex

// Tracer receives diagnostic messages from the solver. It is purely
// observational, never load-bearing for correctness.
type Tracer interface {
	Tracef(format string, args ...interface{})
}

type noopTracer struct{}

func (noopTracer) Tracef(string, ...interface{}) {}

var defaultTracer Tracer = noopTracer{}

// SetTracer installs t as the package-wide tracer used by subsequent
// Solve calls. Passing nil restores the no-op tracer. Solve is
// single-threaded per call, but the tracer itself is shared package
// state, so callers that need per-call tracing in concurrent solves
// should serialize SetTracer/Solve pairs or leave the default no-op
// tracer in place.
func SetTracer(t Tracer) {
	if t == nil {
		t = noopTracer{}
	}
	defaultTracer = t
}
