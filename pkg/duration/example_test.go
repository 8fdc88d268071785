package duration_test

import (
	"fmt"
	"time"

	"github.com/timegrid/timegrid/pkg/duration"
)

func ExampleFloor() {
	t := time.Date(2007, time.June, 15, 13, 45, 30, 0, time.UTC)

	fmt.Println(duration.Floor(t, duration.Of(duration.Month, 1)).Format("2006-01-02 15:04"))
	fmt.Println(duration.Floor(t, duration.Of(duration.Hour, 6)).Format("2006-01-02 15:04"))
	// Output:
	// 2007-06-01 00:00
	// 2007-06-15 12:00
}

func ExampleRoundMillis() {
	table := duration.DefaultTable()

	// 40 days is multiplicatively closest to one month.
	span := 40 * 24 * time.Hour
	d := duration.RoundMillis(float64(span.Milliseconds()), table, duration.DefaultRepeat)
	fmt.Println(d)
	// Output:
	// P1M
}

func ExampleRange() {
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2000, time.July, 1, 0, 0, 0, 0, time.UTC)

	// Every second month from January, excluding the end date.
	r, _ := duration.NewRange(start, end, duration.Of(duration.Month, 1), 2)
	for {
		d, ok := r.Next()
		if !ok {
			break
		}
		fmt.Println(d.Format("2006-01-02"))
	}
	// Output:
	// 2000-01-01
	// 2000-03-01
	// 2000-05-01
}
