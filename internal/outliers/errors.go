package outliers

import "errors"

var (
	// ErrEmptySeries is returned when the input series has no points.
	ErrEmptySeries = errors.New("outliers: empty series")

	// ErrInvalidConfiguration is returned when the window is non-positive or
	// exceeds the series length, so no rolling statistic is defined.
	ErrInvalidConfiguration = errors.New("outliers: invalid configuration")
)
