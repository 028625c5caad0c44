package bench

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/cbismuth/fast-random/maths"
)

// Report summarises the timings of repeated runs of a single function.
type Report struct {
	Name   string
	Rounds int
	Total  time.Duration
	Mean   time.Duration
	StdDev time.Duration
}

func (r Report) String() string {
	if r.Rounds == 1 {
		return fmt.Sprintf("%s executed in %s", r.Name, r.Mean)
	}

	return fmt.Sprintf("%s executed %d times in %s (mean %s, stddev %s)", r.Name, r.Rounds, r.Total, r.Mean, r.StdDev)
}

// Run times the given number of rounds of the given function and returns a report of the elapsed durations. The first
// error returned by the function aborts the run.
func Run(name string, rounds int, fn func() error) (Report, error) {
	rounds = maths.Max(1, rounds)

	var (
		samples = make([]float64, 0, rounds)
		total   time.Duration
	)

	for i := 0; i < rounds; i++ {
		watch := Start()

		if err := fn(); err != nil {
			return Report{}, fmt.Errorf("round %d: %w", i+1, err)
		}

		elapsed := watch.Stop()

		total += elapsed
		samples = append(samples, float64(elapsed))
	}

	report := Report{
		Name:   name,
		Rounds: rounds,
		Total:  total,
		Mean:   time.Duration(stat.Mean(samples, nil)),
	}

	// The sample standard deviation is undefined for a single round.
	if rounds > 1 {
		report.StdDev = time.Duration(stat.StdDev(samples, nil))
	}

	return report, nil
}
