package outliers

import "math"

// rollingStats keeps running sum and sum of squares over a fixed-size window
// so the per-index mean and stddev come out in O(1) per step.
type rollingStats struct {
	window int
	values []float64
	idx    int
	count  int
	sum    float64
	sumSq  float64
}

func newRollingStats(window int) *rollingStats {
	return &rollingStats{
		window: window,
		values: make([]float64, window),
	}
}

func (r *rollingStats) add(v float64) {
	if r.count == r.window {
		old := r.values[r.idx]
		r.sum -= old
		r.sumSq -= old * old
	} else {
		r.count++
	}
	r.values[r.idx] = v
	r.sum += v
	r.sumSq += v * v
	r.idx = (r.idx + 1) % r.window
}

func (r *rollingStats) full() bool {
	return r.count == r.window
}

func (r *rollingStats) mean() float64 {
	if r.count == 0 {
		return 0
	}
	return r.sum / float64(r.count)
}

// stdDev is the population standard deviation (divide by N) of the window.
func (r *rollingStats) stdDev() float64 {
	if r.count == 0 {
		return 0
	}
	n := float64(r.count)
	m := r.sum / n
	variance := r.sumSq/n - m*m
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}
