// Copyright (c) 2026 Glowlab. All rights reserved.

/*
Package query parses loosely-formatted list values from URL query strings
and environment variables.

Malformed entries are dropped rather than reported; callers that need to
distinguish bad input from absent input should parse explicitly instead.
*/
package query

import (
	"strconv"
	"strings"
)

// IntSlice parses repeated query values into integers, skipping entries
// that do not parse.
func IntSlice(values []string) []int {
	parsed := make([]int, 0, len(values))
	for _, value := range values {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			parsed = append(parsed, n)
		}
	}
	if len(parsed) == 0 {
		return nil
	}
	return parsed
}

// StringSlice splits a comma-separated value into trimmed entries,
// dropping empties. An empty input yields nil.
func StringSlice(value string) []string {
	if value == "" {
		return nil
	}

	var parsed []string
	for _, entry := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			parsed = append(parsed, trimmed)
		}
	}
	return parsed
}
