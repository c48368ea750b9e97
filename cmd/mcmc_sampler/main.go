// Command mcmc_sampler draws samples from the Simplicial Configuration
// Model ensemble by MCMC rewiring.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scmsampler/scm/complex"
	"github.com/scmsampler/scm/ioformat"
	"github.com/scmsampler/scm/random"
	"github.com/scmsampler/scm/sampler"
	"github.com/scmsampler/scm/sanitize"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("mcmc_sampler", pflag.ContinueOnError)
	burnIn := fs.IntP("burn-in", "b", 0, "burn-in proposals (default M*ln M)")
	steps := fs.IntP("steps", "t", 1, "number of emitted samples")
	freq := fs.IntP("frequency", "f", 0, "attempts per sample (default M*ln M)")
	seed := fs.Int64P("seed", "d", 0, "RNG seed (default wall-clock nanoseconds)")
	lMax := fs.IntP("lmax", "l", 0, "L_max override; warns if below 2*s_max")
	expProp := fs.Bool("exp_prop", false, "exponential proposal weights exp(alpha*l)")
	plProp := fs.Bool("pl_prop", false, "power-law proposal weights l^(-alpha)")
	fs.Bool("unif_prop", true, "uniform proposal weights (default)")
	alpha := fs.Float64("prop_param", 1.0, "alpha parameter for --exp_prop / --pl_prop")
	cleansed := fs.BoolP("cleansed_input", "c", false, "skip sanitization; caller guarantees cleanliness")
	verbose := fs.BoolP("verbose", "v", false, "emit parameter echo and progress to stderr")
	help := fs.BoolP("help", "h", false, "print usage")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: mcmc_sampler [options] <facet-list-path>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *help {
		fs.Usage()
		return 0
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 1
	}

	logger := newLogger(*verbose)
	defer logger.Sync()

	path := fs.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcmc_sampler: %v\n", err)
		return 1
	}
	defer f.Close()

	raw, err := ioformat.ParseFacetList(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcmc_sampler: %v\n", err)
		return 1
	}

	var k *complex.Complex
	var labels *sanitize.LabelMap
	var sMax int
	if *cleansed {
		result, err := sanitize.AssumeCleansed(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mcmc_sampler: %v\n", err)
			return 1
		}
		k, labels, sMax = result.Complex, result.Labels, result.MaxSize
	} else {
		result, err := sanitize.Sanitize(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mcmc_sampler: %v\n", err)
			return 1
		}
		k, labels, sMax = result.Complex, result.Labels, result.MaxSize
	}

	resolvedSeed := *seed
	if resolvedSeed == 0 {
		resolvedSeed = time.Now().UnixNano()
	}

	kind := random.Uniform
	switch {
	case *expProp:
		kind = random.Exponential
	case *plProp:
		kind = random.PowerLaw
	}

	opts := sampler.Options{
		Seed:              resolvedSeed,
		BurnIn:            orDefault(*burnIn, sampler.DefaultSchedule(k.M())),
		SamplingSteps:     *steps,
		SamplingFrequency: orDefault(*freq, sampler.DefaultSchedule(k.M())),
		LMin:              2,
		Kind:              kind,
		Alpha:             *alpha,
		Warn: func(msg string) {
			fmt.Fprintf(os.Stderr, "mcmc_sampler: warning: %s\n", msg)
		},
	}
	opts.LMax = sampler.ResolveLMax(*lMax, k.M(), sMax, opts.Warn)

	logger.Info("starting MCMC sample run",
		zap.Int64("seed", resolvedSeed),
		zap.Int("burn_in", opts.BurnIn),
		zap.Int("sampling_steps", opts.SamplingSteps),
		zap.Int("sampling_frequency", opts.SamplingFrequency),
		zap.Int("l_max", opts.LMax),
	)

	w := &ioformat.Writer{Out: os.Stdout, Labels: labels}
	emit := sampler.EmitterFunc(func(got *complex.Complex) error {
		return w.WriteSample(got, "# Sample:")
	})

	report, err := sampler.RunMCMC(k, opts, emit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcmc_sampler: %v\n", err)
		return 1
	}

	logger.Info("run complete",
		zap.Int("attempts", report.Attempts),
		zap.Int("accepted", report.Accepted),
		zap.Float64("acceptance_ratio", report.AcceptanceRatio),
	)
	return 0
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = ""
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
