// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations are shared across test packages. Each mock
// exposes function fields (CreateFn, GetByIDFn, ...) for per-test behavior
// and falls back to a simple in-memory default when the field is nil.
package mocks
