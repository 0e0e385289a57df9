package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Since reports the time elapsed on clk since start.
func Since(clk Clock, start time.Time) time.Duration {
	return clk.Now().Sub(start)
}
