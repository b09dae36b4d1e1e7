// percent implements a simple and straightforward type for percentage values
package percent

import (
	"math"
	"strconv"
	"strings"
)

// Percent is a simple and straightforward type for percentage values
type Percent uint8

func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Percent(0)
	case n >= 100:
		return Percent(100)
	}
	return Percent(n)
}

func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= 100 || math.IsInf(f, 1):
		return Percent(100)
	}
	return Percent(math.Round(f))
}

// FromRatio returns the rounded percentage of part/total.
// A non-positive total yields 100%.
func FromRatio(part, total int) Percent {
	if total <= 0 {
		return Percent(100)
	}
	return FromFloat(float64(part) / float64(total) * 100)
}

func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	n, err := strconv.Atoi(s)
	return FromInt(n), err
}

// Of returns the share of n covered by p, rounded down.
func (p Percent) Of(n int) int {
	if n <= 0 {
		return 0
	}
	return n * int(p) / 100
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}
