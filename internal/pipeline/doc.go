// Package pipeline runs lesson steps in sequence.
//
// Each step appends one part of the lesson document. The pipeline logs every
// step, stops at the first error and wraps that error with the step name so
// callers can tell which example failed.
package pipeline
