// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"strconv"
	"strings"
)

// FormatVersion builds the short version used in distribution names: the
// first digit of each of the first three dot-separated parts that start with
// a digit. "9.1.2.3456" becomes "912". If no part starts with a digit the
// input is returned unchanged.
func FormatVersion(version string) string {
	if version == "" {
		return ""
	}

	digits := make([]byte, 0, 3)
	for _, part := range strings.Split(version, ".") {
		if part != "" && part[0] >= '0' && part[0] <= '9' {
			digits = append(digits, part[0])
		}
		if len(digits) == 3 {
			break
		}
	}

	if len(digits) == 0 {
		return version
	}
	return string(digits)
}

// MajorVersion returns the leading number of the first version part.
func MajorVersion(version string) (int, bool) {
	first, _, _ := strings.Cut(version, ".")
	end := 0
	for end < len(first) && first[end] >= '0' && first[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	major, err := strconv.Atoi(first[:end])
	if err != nil {
		return 0, false
	}
	return major, true
}
