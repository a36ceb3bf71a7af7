// Package mock provides test doubles for the ai package interfaces.
//
// All mocks support behavior injection via function fields and track
// call counts for test assertions. Default behavior is deterministic
// so tests are reproducible without external services.
package mock
