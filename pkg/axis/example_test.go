package axis_test

import (
	"fmt"
	"time"

	"github.com/timegrid/timegrid/pkg/axis"
	"github.com/timegrid/timegrid/pkg/measure"
)

func ExampleLayout() {
	min := float64(time.Date(2014, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli())
	max := float64(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli())

	res, err := axis.Layout(axis.Options{
		Window: axis.ViewWindow{Min: min, Max: max},
		Scale: func(v float64) (float64, bool) {
			return (v - min) / (max - min) * 1000, true
		},
		Measurer: measure.Fixed{},
	})
	if err != nil {
		fmt.Println("layout:", err)
		return
	}

	fmt.Println(res.Outcome, res.Stats.Unit, len(res.Gridlines), res.Stats.Visible)
	// Output: full year 11 11
}
