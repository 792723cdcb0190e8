// Package pipeline orchestrates page scans as a sequence of steps.
//
// A scan of one URL runs fetch, analyze, and save steps over a shared Job.
// The Pipeline executes steps in order with cancellation checks between
// them; the BatchProcessor runs one pipeline per URL concurrently with a
// bounded limit.
package pipeline
