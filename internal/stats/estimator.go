package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/electionlab/poll-data/internal/model"
)

const (
	// madToSigma is the standard-normal 75th-percentile point. MAD
	// divided by it is a consistent estimator of the standard
	// deviation under normality.
	madToSigma = 0.6745

	// pairFloor is the minimum spread reported from a two-poll
	// estimate, in percentage points. Two-sample standard deviations
	// are too unreliable to trust below this.
	pairFloor = 3.0
)

// Mode selects the center statistic for three or more polls.
type Mode string

const (
	ModeMedian Mode = "median" // median center, MAD-based spread
	ModeMean   Mode = "mean"   // mean center, sample-stddev spread
)

// Summary is the output of one estimate.
type Summary struct {
	Center float64 // Margin point estimate; sign favors the first candidate
	Spread float64 // Standard error of the center
}

// Estimator computes margin summaries. The zero value uses median mode.
type Estimator struct {
	Mode Mode
}

// Estimate summarizes the margins of the given polls. Callers must pass
// at least one poll; zero polls is an invariant violation, not a
// recoverable condition.
func (e Estimator) Estimate(polls []model.PollRecord) (Summary, error) {
	switch len(polls) {
	case 0:
		return Summary{}, errors.New("estimate called with zero polls")
	case 1:
		return single(polls[0])
	case 2:
		return pair(polls), nil
	default:
		return e.many(polls), nil
	}
}

// single falls back to a sampling-proportion spread, sqrt(1/n), since a
// lone poll carries no poll-to-poll variance information.
func single(p model.PollRecord) (Summary, error) {
	if p.SampleSize <= 0 {
		return Summary{}, fmt.Errorf("single poll %d (%s) reports no sample size", p.ExternalID, p.Pollster)
	}
	return Summary{
		Center: float64(p.Margin),
		Spread: math.Sqrt(1 / float64(p.SampleSize)),
	}, nil
}

func pair(polls []model.PollRecord) Summary {
	m := margins(polls)
	return Summary{
		Center: stat.Mean(m, nil),
		Spread: math.Max(stat.StdDev(m, nil)/math.Sqrt2, pairFloor),
	}
}

func (e Estimator) many(polls []model.PollRecord) Summary {
	m := margins(polls)
	n := float64(len(m))

	if e.Mode == ModeMean {
		return Summary{
			Center: stat.Mean(m, nil),
			Spread: stat.StdDev(m, nil) / math.Sqrt(n),
		}
	}

	center := median(m)
	dev := make([]float64, len(m))
	for i, v := range m {
		dev[i] = math.Abs(v - center)
	}
	mad := median(dev)

	return Summary{
		Center: center,
		Spread: mad / madToSigma / math.Sqrt(n),
	}
}

func margins(polls []model.PollRecord) []float64 {
	m := make([]float64, len(polls))
	for i, p := range polls {
		m[i] = float64(p.Margin)
	}
	return m
}

// median averages the two middle values for even-length input. The
// downstream model expects this midpoint convention, which gonum's
// empirical quantile does not provide.
func median(v []float64) float64 {
	s := slices.Clone(v)
	sort.Float64s(s)

	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}
