// Package mathx provides generic numeric helpers: clamping, linear
// interpolation, and one-pass slice aggregates.
package mathx
