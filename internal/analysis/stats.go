package analysis

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Stats holds descriptive statistics for one numeric column.
type Stats struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	Median float64
	// Mode is meaningful only when HasMode is true.
	Mode    float64
	HasMode bool
	// Std is the sample standard deviation; it needs at least two values.
	Std    float64
	HasStd bool
}

// ParseNumber parses s as a decimal float64, ignoring surrounding whitespace.
// Hexadecimal forms such as 0x1p3 are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(strings.TrimLeft(s, "+-")), "0x") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Summarize computes Stats over vals. It returns false for an empty input.
func Summarize(vals []float64) (Stats, bool) {
	if len(vals) == 0 {
		return Stats{}, false
	}
	s := Stats{Count: len(vals), Min: math.Inf(1), Max: math.Inf(-1)}
	var sum, mean, m2 float64
	for i, x := range vals {
		sum += x
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
		// Welford update
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}
	n := float64(len(vals))
	s.Mean = sum / n
	scale := math.Max(math.Abs(s.Min), math.Abs(s.Max))
	if !finite(s.Mean) && finite(scale) {
		s.Mean = scaledMean(vals)
	}
	// rounding in sum/count can land just outside the observed range
	if s.Mean < s.Min {
		s.Mean = s.Min
	} else if s.Mean > s.Max {
		s.Mean = s.Max
	}
	if len(vals) > 1 {
		s.Std = math.Sqrt(m2 / (n - 1))
		if !finite(s.Std) && finite(scale) {
			s.Std = scaledStd(vals, scale)
		}
		s.HasStd = true
	}
	s.Median = median(vals)
	s.Mode, s.HasMode = mode(vals)
	return s, true
}

func finite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// scaledMean averages terms divided by the count first, so large finite
// inputs whose sum overflows still produce a finite mean.
func scaledMean(vals []float64) float64 {
	n := float64(len(vals))
	var m float64
	for _, x := range vals {
		m += x / n
	}
	return m
}

// scaledStd is the two-pass sample standard deviation of vals/scale,
// multiplied back by scale.
func scaledStd(vals []float64, scale float64) float64 {
	n := float64(len(vals))
	var mean float64
	for _, x := range vals {
		mean += x / scale / n
	}
	var ss float64
	for _, x := range vals {
		d := x/scale - mean
		ss += d * d
	}
	return scale * math.Sqrt(ss/(n-1))
}

func median(vals []float64) float64 {
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)
	n := len(cp)
	if n%2 == 1 {
		return cp[n/2]
	}
	return (cp[n/2-1] + cp[n/2]) / 2
}

// mode returns the single most frequent value. Ties for the top count and
// inputs where every value occurs once have no mode.
func mode(vals []float64) (float64, bool) {
	counts := make(map[float64]int, len(vals))
	for _, v := range vals {
		counts[v]++
	}
	var best float64
	bestN, ties := 0, 0
	for v, n := range counts {
		switch {
		case n > bestN:
			best, bestN, ties = v, n, 1
		case n == bestN:
			ties++
		}
	}
	if bestN < 2 || ties != 1 {
		return 0, false
	}
	return best, true
}
