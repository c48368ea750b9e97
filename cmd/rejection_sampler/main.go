// Command rejection_sampler draws samples from the Simplicial Configuration
// Model ensemble by shuffle-and-retry rejection sampling.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scmsampler/scm/complex"
	"github.com/scmsampler/scm/ioformat"
	"github.com/scmsampler/scm/sampler"
	"github.com/scmsampler/scm/sanitize"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("rejection_sampler", pflag.ContinueOnError)
	n := fs.IntP("count", "n", 1, "number of samples")
	seed := fs.Int64P("seed", "d", 0, "RNG seed (default wall-clock nanoseconds)")
	cleansed := fs.BoolP("cleansed_input", "c", false, "skip sanitization; caller guarantees cleanliness")
	degreesPath := fs.StringP("degrees", "k", "", "degree sequence path (sequence mode)")
	sizesPath := fs.StringP("sizes", "s", "", "size sequence path (sequence mode)")
	sep := fs.String("separator", "#######", "sample separator line")
	verbose := fs.BoolP("verbose", "v", false, "verbose diagnostics to stderr")
	help := fs.BoolP("help", "h", false, "print usage")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: rejection_sampler [options] <facet-list-path>")
		fmt.Fprintln(os.Stderr, "       rejection_sampler [options] -k <degrees-path> -s <sizes-path>")
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

	logger := newLogger(*verbose)
	defer logger.Sync()

	resolvedSeed := *seed
	if resolvedSeed == 0 {
		resolvedSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(resolvedSeed))

	k, labels, err := load(fs, *cleansed, *degreesPath, *sizesPath, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rejection_sampler: %v\n", err)
		return 1
	}

	logger.Info("starting rejection sample run",
		zap.Int64("seed", resolvedSeed),
		zap.Int("count", *n),
	)

	w := &ioformat.Writer{Out: os.Stdout, Labels: labels}
	first := true
	emit := sampler.EmitterFunc(func(got *complex.Complex) error {
		if !first {
			if err := w.WriteSeparator(*sep); err != nil {
				return err
			}
		}
		first = false
		return w.WriteSample(got, "")
	})

	report, err := sampler.RunRejection(k, *n, rng, emit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rejection_sampler: %v\n", err)
		return 1
	}

	logger.Info("run complete",
		zap.Int("attempts", report.Attempts),
		zap.Int("accepted", report.Accepted),
		zap.Float64("acceptance_ratio", report.AcceptanceRatio),
	)
	return 0
}

// load builds the starting Complex either from a facet-list positional
// argument or from a -k/-s sequence-mode pair.
func load(fs *pflag.FlagSet, cleansed bool, degreesPath, sizesPath string, rng *rand.Rand) (*complex.Complex, *sanitize.LabelMap, error) {
	if degreesPath != "" || sizesPath != "" {
		if degreesPath == "" || sizesPath == "" {
			return nil, nil, fmt.Errorf("both -k and -s are required in sequence mode")
		}
		degrees, err := readSequence(degreesPath)
		if err != nil {
			return nil, nil, err
		}
		sizes, err := readSequence(sizesPath)
		if err != nil {
			return nil, nil, err
		}
		k, err := complex.FromSequences(sizes, degrees, rng)
		if err != nil {
			return nil, nil, fmt.Errorf("rejection_sampler: %w", err)
		}
		return k, nil, nil
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return nil, nil, fmt.Errorf("missing facet-list-path")
	}
	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	raw, err := ioformat.ParseFacetList(f)
	if err != nil {
		return nil, nil, err
	}

	if cleansed {
		res, err := sanitize.AssumeCleansed(raw)
		if err != nil {
			return nil, nil, err
		}
		return res.Complex, res.Labels, nil
	}
	res, err := sanitize.Sanitize(raw)
	if err != nil {
		return nil, nil, err
	}
	return res.Complex, res.Labels, nil
}

func readSequence(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ioformat.ParseSequence(f)
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
