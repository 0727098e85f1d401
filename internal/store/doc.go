// Package store defines interfaces for task-state persistence operations.
// These interfaces abstract the underlying registry mechanism from the
// application's core logic, allowing the pipeline and API surface to remain
// independent of how task records are held. The bundled implementation is
// in-memory; a durable variant would swap in behind the same interface.
package store
