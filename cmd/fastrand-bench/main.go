// fastrand-bench compares the elapsed time of the three sampling algorithms over a randomly generated source slice.
package main

import (
	"math"
	"math/rand"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cbismuth/fast-random/bench"
	"github.com/cbismuth/fast-random/random"
)

// rootCmd represents the benchmark command.
var rootCmd = &cobra.Command{
	Use:   "fastrand-bench",
	Short: "Compare the duplicate-free random sampling algorithms against each other.",
	Long: "Generate a slice of random integers, extract a duplicate-free random sample from it with each of the " +
		"three algorithms in turn, and report the elapsed durations.",
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if getBool(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		config := benchConfig{
			sourceLength: getInt(cmd, "source-length"),
			sampleLength: getInt(cmd, "sample-length"),
			maxValue:     getInt(cmd, "max-value"),
			rounds:       getInt(cmd, "rounds"),
			skipRebuild:  getBool(cmd, "skip-rebuild"),
		}

		runBenchmarks(config)
	},
}

type benchConfig struct {
	sourceLength int
	sampleLength int
	maxValue     int
	rounds       int
	skipRebuild  bool
}

func runBenchmarks(config benchConfig) {
	log.Debugf("generating a source of %d random integers in [0, %d)", config.sourceLength, config.maxValue)

	src := make([]int, config.sourceLength)
	for i := range src {
		src[i] = rand.Intn(config.maxValue)
	}

	samplers := []struct {
		name string
		skip bool
		fn   func(src []int, p int) ([]int, error)
	}{
		{
			name: "rebuild",
			skip: config.skipRebuild,
			fn: func(src []int, p int) ([]int, error) {
				return random.Rebuild(src, p)
			},
		},
		{
			name: "in-place",
			fn: func(src []int, p int) ([]int, error) {
				return random.InPlace(src, p)
			},
		},
		{
			name: "hashed",
			fn: func(src []int, p int) ([]int, error) {
				return random.Hashed(src, p, random.HashNumber[int]())
			},
		},
	}

	for _, sampler := range samplers {
		if sampler.skip {
			log.Debugf("skipping the %s algorithm", sampler.name)
			continue
		}

		run := func() error {
			// Each round samples from its own copy so every algorithm sees the same source order.
			cpy := make([]int, len(src))
			copy(cpy, src)

			_, err := sampler.fn(cpy, config.sampleLength)

			return err
		}

		report, err := bench.Run(sampler.name, config.rounds, run)
		if err != nil {
			log.WithError(err).Fatalf("the %s algorithm failed", sampler.name)
		}

		log.Info(report)
	}
}

func getInt(cmd *cobra.Command, name string) int {
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(err)
	}

	return value
}

func getBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(err)
	}

	return value
}

func init() {
	rootCmd.Flags().Int("source-length", 1_000_000, "number of elements in the generated source slice")
	rootCmd.Flags().Int("sample-length", 1_000, "number of distinct elements to sample")
	rootCmd.Flags().Int("max-value", math.MaxInt32, "exclusive upper bound of the generated values")
	rootCmd.Flags().Int("rounds", 1, "number of times to run each algorithm")
	rootCmd.Flags().Bool("skip-rebuild", false, "skip the quadratic rebuild baseline")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
