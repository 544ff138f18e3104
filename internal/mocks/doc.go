// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock has an in-memory default implementation
// plus per-method function fields for overriding behavior in a single test.
package mocks
