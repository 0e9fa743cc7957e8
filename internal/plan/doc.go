// Package plan provides the resolution pipeline that turns a validated
// schema into a builder type description consumed by code generation.
//
// Resolution pipeline:
//  1. Load YAML schema → validate
//  2. For each builder:
//     - Split fields into typestate-tracked (required) and free (optional)
//     - Assign each required field a marker pair (Unset/Set) and a state
//       type parameter slot, in schema order
//     - Resolve Go types, store field names, and exposed operation names
//  3. Dedupe marker pairs and opaque types across builders in the package
//  4. Emit diagnostics (name collisions, anything validation missed)
package plan
