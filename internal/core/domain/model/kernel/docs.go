// Package kernel contains shared value objects used by every aggregate in the
// recruitment domain. Types here carry no business rules of their own; they
// enforce construction and equality semantics that the aggregates rely on.
package kernel
