// Package gen provides deterministic Go code generation for typestate
// request builders.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Codegen patterns:
//   - One marker pair (Unset/Set) per required field, shared per package
//   - A generic builder struct with one state type parameter per required
//     field, wrapping a flat unexported value store
//   - State-gated setters and accessors as package-level functions that fix
//     the relevant marker type argument (methods cannot be declared on a
//     partial instantiation, so gated operations cannot be methods)
//   - Always-available optional setters and accessors as methods
//   - A finalize function whose parameter type fixes every marker to Set
package gen
