package localiser

import (
	"log"

	"github.com/chainrecurrent/locator/cell"
	"github.com/chainrecurrent/locator/mapping"
)

// Config holds every tunable of a localisation run. SamplesPerCell and the
// initial fragmentation factor were hard-coded constants in the original
// tool (100, and 40x40 respectively); SPEC_FULL exposes both as
// parameters, defaulted to those same values, per the open questions in
// spec.md §9.
type Config struct {
	Bounds cell.Bounds
	F, G   mapping.Func

	// CellDensity is the number of points sampled per surviving Active
	// leaf when producing the final (xs, ys) output.
	CellDensity int

	// Depth is the number of refine-image-decompose-markup cycles run
	// after the initial fragmentation.
	Depth int

	// SamplesPerCell is the number of Monte-Carlo probes per leaf when
	// building each symbolic image. Default 100.
	SamplesPerCell int

	// InitialFragmentsX, InitialFragmentsY is the root's first
	// subdivision factor. Default 40, 40.
	InitialFragmentsX, InitialFragmentsY int

	// TopsortEnabled requests a topological ordering of the surviving
	// non-trivial components after the final refine step.
	TopsortEnabled bool

	// Seed drives the single per-run RNG; the RNG is never global state.
	Seed int64

	// Parallel enables the symbolic image worker pool.
	Parallel bool

	// Logger receives one line per phase transition. Nil is safe and
	// suppresses all output.
	Logger *log.Logger
}

// DefaultConfig returns a Config with SamplesPerCell=100,
// InitialFragmentsX=InitialFragmentsY=40, and zero values otherwise. F, G,
// Bounds, CellDensity, and Depth must still be set by the caller.
func DefaultConfig() Config {
	return Config{
		SamplesPerCell:    100,
		InitialFragmentsX: 40,
		InitialFragmentsY: 40,
	}
}

func (c Config) validate() error {
	if c.F == nil || c.G == nil {
		return wrapConfig("mapping functions must be non-nil")
	}
	if c.CellDensity < 1 {
		return wrapConfig("cell_density must be >= 1")
	}
	if c.Depth < 1 {
		return wrapConfig("depth must be >= 1")
	}
	if c.SamplesPerCell < 1 {
		return wrapConfig("samples_per_cell must be >= 1")
	}
	if c.InitialFragmentsX < 1 || c.InitialFragmentsY < 1 {
		return wrapConfig("initial fragmentation factor must be >= 1 on each axis")
	}
	return nil
}

func wrapConfig(msg string) error {
	return &configError{msg: msg}
}

type configError struct{ msg string }

func (e *configError) Error() string { return "localiser: " + e.msg }

func (e *configError) Unwrap() error { return ErrInvalidConfig }
