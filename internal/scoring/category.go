package scoring

import "math"

// CategoryScore is one weighted slice of an overall score.
type CategoryScore struct {
	Name     string   `json:"name"`
	Score    float64  `json:"score"`
	Max      float64  `json:"max_score"`
	Feedback []string `json:"feedback,omitempty"`
}

// Percent is the category score as a percentage of its maximum. A zero
// maximum yields 0.
func (c CategoryScore) Percent() float64 {
	if c.Max == 0 {
		return 0
	}
	return c.Score / c.Max * 100
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundInt rounds half away from zero to the nearest integer.
func RoundInt(v float64) int {
	return int(math.Round(v))
}

// Ratio divides found by total, guarding the zero denominator.
func Ratio(found, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(found) / float64(total)
}
