package dem

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the finite elevation samples of a grid.
type Summary struct {
	Samples int // finite sample count
	Missing int
	Min     float64
	Max     float64
	Mean    float64
	StdDev  float64
}

func summarize(elev []float64) (Summary, error) {
	finite := make([]float64, 0, len(elev))
	for _, v := range elev {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return Summary{}, formatErr("elev", "no finite elevation samples")
	}

	s := Summary{
		Samples: len(finite),
		Missing: len(elev) - len(finite),
		Min:     finite[0],
		Max:     finite[0],
		Mean:    stat.Mean(finite, nil),
	}
	if len(finite) > 1 {
		s.StdDev = stat.StdDev(finite, nil)
	}
	for _, v := range finite {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	return s, nil
}
