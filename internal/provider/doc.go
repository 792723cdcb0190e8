// Package provider defines the optional text-transformation capability
// used by the summary pipeline.
//
// A provider has no availability guarantee: it may be absent (a nil field
// in Set), fail, or hang. Callers must treat every provider call as
// fallible and wrap it with a timeout; the summary pipeline recovers from
// all provider failures by falling back to the previous stage's output.
//
// Providers are passed explicitly by the caller. Nothing in this package
// reads ambient global state to discover capabilities.
package provider
