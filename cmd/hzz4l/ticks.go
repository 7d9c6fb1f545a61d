package main

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// preciseTicks places about n labeled ticks at 1/2/5×10^k steps, with
// unlabeled minor ticks half-way between them. Labels are never
// truncated.
type preciseTicks struct{ n int }

func (t preciseTicks) Ticks(min, max float64) []plot.Tick {
	n := t.n
	if n < 2 {
		n = 4
	}
	if max <= min {
		panic("hzz4l: illegal tick range")
	}

	step := niceStep((max - min) / float64(n-1))

	var ticks []plot.Tick
	for i := math.Ceil(min / step); i*step <= max; i++ {
		v := i * step
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: strconv.FormatFloat(v, 'g', -1, 64),
		})
	}
	for i := math.Floor(min/step) + 0.5; i*step <= max; i++ {
		if v := i * step; v >= min {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

// niceStep rounds d up to the nearest 1, 2 or 5 times a power of ten.
func niceStep(d float64) float64 {
	pow := math.Pow(10, math.Floor(math.Log10(d)))
	switch m := d / pow; {
	case m <= 1:
		return pow
	case m <= 2:
		return 2 * pow
	case m <= 5:
		return 5 * pow
	}
	return 10 * pow
}
