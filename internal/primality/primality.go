package primality

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/bignum/internal/bigint"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
)

// Options tunes a batch run. Zero fields fall back to the resolved
// configuration; a nil Logger stays silent and nil Metrics records nothing.
type Options struct {
	// Rounds is the Miller-Rabin witness count per candidate.
	Rounds int
	// Workers bounds the number of candidates tested concurrently.
	Workers int
	// Seed fixes the witness stream for reproducible runs; zero derives a
	// seed from the clock.
	Seed uint64
	// Logger receives per-batch and per-candidate events.
	Logger logging.Logger
	// Metrics receives test counters and timings.
	Metrics *metrics.Metrics
}

// Result is the outcome for one candidate of a batch.
type Result struct {
	// Value is the candidate that was tested.
	Value bigint.Int
	// Prime reports the Miller-Rabin verdict. A false value is definitive,
	// a true one is probabilistic.
	Prime bool
	// Duration is the time taken to test this candidate.
	Duration time.Duration
	// Err is the per-candidate failure, if any.
	Err error
}

// resolve fills unset options from the environment-backed configuration.
func (o Options) resolve() Options {
	cfg := config.Load()
	if o.Rounds < 1 {
		o.Rounds = cfg.WitnessRounds
	}
	if o.Workers < 1 {
		o.Workers = cfg.Workers
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	if o.Logger == nil {
		if cfg.Verbose {
			o.Logger = logging.NewDefaultLogger()
		} else {
			o.Logger = logging.NewNopLogger()
		}
	}
	return o
}

// source derives an independent witness stream for one worker slot. Each
// goroutine gets its own generator, as rand.Rand is not safe for concurrent
// use.
func (o Options) source(slot int) *rand.Rand {
	return rand.New(rand.NewPCG(o.Seed, uint64(slot)+1))
}

// TestAll tests every value of the batch and returns the verdicts in input
// order. Candidates run concurrently under the configured worker limit; a
// per-candidate failure lands in its Result while the batch keeps going.
// Returns early with the context error when ctx is cancelled.
func TestAll(ctx context.Context, values []bigint.Int, opts Options) ([]Result, error) {
	opts = opts.resolve()
	results := make([]Result, len(values))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	opts.Logger.Info("primality batch started",
		logging.Int("candidates", len(values)),
		logging.Int("rounds", opts.Rounds),
		logging.Int("workers", opts.Workers))
	mem := metrics.NewMemoryCollector()
	before := mem.Snapshot()
	batchStart := time.Now()

	for i, v := range values {
		idx, value := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			startTime := time.Now()
			prime, err := value.ProbablyPrime(opts.source(idx), opts.Rounds)
			elapsed := time.Since(startTime)
			results[idx] = Result{Value: value, Prime: prime, Duration: elapsed, Err: err}

			if err != nil {
				opts.Logger.Error("candidate test failed", err, logging.String("value", value.String()))
				return nil
			}
			if opts.Metrics != nil {
				opts.Metrics.ObserveTest(prime, opts.Rounds, elapsed)
			}
			opts.Logger.Debug("candidate tested",
				logging.String("value", value.String()),
				logging.Bool("prime", prime))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	if opts.Metrics != nil {
		opts.Metrics.ObserveBatch(time.Since(batchStart))
	}
	delta := mem.Snapshot().Delta(before)
	opts.Logger.Debug("primality batch finished",
		logging.Int("candidates", len(values)),
		logging.Uint64("heap_alloc_delta", delta.HeapAlloc),
		logging.Uint64("gc_cycles", uint64(delta.NumGC)))
	return results, nil
}

// FindNext returns the smallest probable prime strictly greater than start.
// The scan walks odd candidates only, checking ctx between tests so long
// searches stay cancellable.
func FindNext(ctx context.Context, start bigint.Int, opts Options) (bigint.Int, error) {
	opts = opts.resolve()
	src := opts.source(0)

	if start.Cmp(bigint.Two()) < 0 {
		return bigint.Two(), nil
	}

	candidate := start.Add(bigint.One())
	if candidate.IsEven() {
		candidate = candidate.Add(bigint.One())
	}

	startTime := time.Now()
	for steps := 1; ; steps++ {
		if err := ctx.Err(); err != nil {
			return bigint.Int{}, err
		}
		prime, err := candidate.ProbablyPrime(src, opts.Rounds)
		if err != nil {
			return bigint.Int{}, err
		}
		if prime {
			if opts.Metrics != nil {
				opts.Metrics.ObserveSearch(steps)
			}
			opts.Logger.Info("prime found",
				logging.String("value", candidate.String()),
				logging.Int("candidates", steps),
				logging.Float64("seconds", time.Since(startTime).Seconds()))
			return candidate, nil
		}
		candidate = candidate.Add(bigint.Two())
	}
}
