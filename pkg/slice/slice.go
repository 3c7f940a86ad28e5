// Copyright (c) 2026 Glowlab. All rights reserved.

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Filter, Diff) leveraging generics.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter filters a slice, returning only elements where the predicate function evaluates to true.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	// Not pre-allocating to full length to avoid excessive memory on heavy filters
	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Diff returns the elements of a that are not present in b.
//
// Both inputs are treated as sets: duplicates in a are emitted once, and the
// order of the result follows the first occurrence in a.
func Diff[T comparable](a, b []T) []T {
	exclude := make(map[T]struct{}, len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}

	seen := make(map[T]struct{}, len(a))
	var result []T
	for _, v := range a {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}

		if _, skip := exclude[v]; !skip {
			result = append(result, v)
		}
	}

	return result
}

// Contains reports whether v is present in input.
func Contains[T comparable](input []T, v T) bool {
	for _, item := range input {
		if item == v {
			return true
		}
	}
	return false
}
