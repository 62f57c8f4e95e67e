// Package shapegen generates randomized but constrained multi-dimensional
// array shapes for fuzzing and property-based tests of tensor code.
//
// Under the hood:
//
//	shape/ — constrained-random shape generation (bounds, product, GCD),
//	         Sampler, Enumerate and Validate
//
//	go get github.com/katalvlaran/shapegen/shape
package shapegen
