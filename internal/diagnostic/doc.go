// Package diagnostic provides structured errors and warnings for the
// builder generator.
//
// Key capabilities:
//   - Schema validation errors with builder and field context
//   - Accumulation instead of fail-fast, so one run reports every problem
//   - Stable codes for tests and tooling
package diagnostic
