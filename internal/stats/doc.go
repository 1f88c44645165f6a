// Package stats computes the central estimate and standard error for a
// set of poll margins.
//
// The default estimator is robust: the center is the sample median and
// the spread is derived from the median absolute deviation (MAD), so a
// single wild poll cannot drag the estimate. A classical mean/stddev
// mode is available for comparison runs. One- and two-poll inputs get
// special-cased spreads because variance estimates from so few samples
// are unusable.
package stats
