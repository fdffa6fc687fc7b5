package matcher

import "strings"

func isValidLocation(location string) bool {
	return strings.TrimSpace(location) != ""
}

func isPositive(value float64) bool {
	return value > 0
}
