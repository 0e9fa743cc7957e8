// Package builder provides the runtime-checked variant of the generated
// typestate builders, for callers who load schemas at runtime instead of
// generating code ahead of time.
//
// The policy matches generated builders exactly:
//
//   - Required fields are set-once: a second Set of the same required field
//     fails with FieldAlreadySetError. Generated builders make the second
//     call unrepresentable; here it is rejected at the first opportunity.
//   - Optional fields may be set any number of times; the last write wins.
//   - Finalize reports every missing required field in a single
//     MissingRequiredFieldError, never just the first one found.
//
// Builders are values in a persistent style: every Set returns a new
// builder and nothing is mutated after creation, so instances can be
// passed between goroutines freely. The schema definition is read-only
// after load and may back any number of concurrent builders.
package builder
