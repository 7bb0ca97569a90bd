package flow

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes arc flows. Std is the population standard deviation.
type Statistics struct {
	Min, Max, Mean, Std float64
}

// NewStatistics summarizes values; an empty slice yields the zero value.
func NewStatistics(values []float64) Statistics {
	if len(values) == 0 {
		return Statistics{}
	}
	mean, std := stat.PopMeanStdDev(values, nil)

	return Statistics{
		Min:  floats.Min(values),
		Max:  floats.Max(values),
		Mean: mean,
		Std:  std,
	}
}
