package mapping

// Func is a consumer-supplied two-argument real function: pure,
// side-effect-free, may return a non-finite value (NaN or +/-Inf), which
// the core treats identically to an out-of-bounds sample.
type Func func(x, y float64) float64
