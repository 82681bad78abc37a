// Package cache provides a generic single-flight loader for expensive,
// fallible value construction.
//
// It combines golang.org/x/sync/singleflight with a permanent result map:
// misses for the same key coalesce onto one build, successes are stored for
// the lifetime of the loader, and failures are returned to all waiters
// without being stored. The protodecode package uses one loader per value
// kind (schema closures, decode contexts), both keyed by schema identifier.
package cache
