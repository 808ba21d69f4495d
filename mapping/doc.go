// Package mapping defines the MappingEval contract — an opaque, pure,
// side-effect-free two-argument real function — and a concrete compiler
// from a user-entered string expression to one, using expr-lang/expr.
//
// The core (cell, symbolicimage, scc, localiser, orbit) imports this package
// only for the Func type and never calls Compile: it only ever sees a Func
// value. Compile exists for the CLI adapter, which is the only place a
// string expression enters the system.
package mapping
