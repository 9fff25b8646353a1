// Package visitor offers ordered visitors for container shapes.
// It provides reflection-backed iteration over slices, arrays, maps,
// range-over-func sequences and struct fields, with callback-based traversal.
package visitor
