package config

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	MinFloors        = 2
	MaxFloors        = 24
	MinElevators     = 2
	MaxElevators     = 12
	DefaultFloors    = 5
	DefaultElevators = 3
	GroundFloor      = 1
	TravelPerFloor   = 1 * time.Second
	UpdateBufferSize = 16
)

// ClampFloors limits a floor count to [MinFloors, MaxFloors].
func ClampFloors(n int) int {
	return min(MaxFloors, max(MinFloors, n))
}

// ClampElevators limits an elevator count to [MinElevators, MaxElevators].
func ClampElevators(n int) int {
	return min(MaxElevators, max(MinElevators, n))
}

// ParseCount reads a count typed by the operator. Only the leading integer is
// considered, so "7 floors" reads as 7. Unparsable input falls back to lower,
// anything else is clamped to [lower, upper], including numbers too large for an int.
func ParseCount(s string, lower, upper int) int {
	digits := leadingInt(strings.TrimSpace(s))
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(digits, "-") {
			return lower
		}
		return upper
	}
	if err != nil {
		return lower
	}
	return min(upper, max(lower, n))
}

func leadingInt(s string) string {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
