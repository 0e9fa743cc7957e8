package common

// UnknownStr is the fallback rendering for enum values outside their range.
const UnknownStr = "unknown"
