// Package kernel contains shared value objects used across aggregates.
// Types here carry no business behavior of their own; they exist to give
// the domain model strongly typed, validated primitives.
package kernel
