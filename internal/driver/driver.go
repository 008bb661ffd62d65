// Package driver implements the host-side batch loop: draw a fresh CSPRNG
// host seed, dispatch a batch, await it, harvest the result, persist and
// report on a match, repeat until the requested number of matches are
// found. It owns the Dispatcher, the progress reporter, and the
// multi-match continuation loop, split out from a fixed worker pool so a
// dispatch.Dispatcher can be swapped independently of the loop driving it.
package driver

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/davidzita/grind/internal/difficulty"
	"github.com/davidzita/grind/internal/dispatch"
	"github.com/davidzita/grind/internal/keypair"
	"github.com/davidzita/grind/internal/metrics"
	"github.com/davidzita/grind/internal/pattern"
)

// DefaultBatchSize is the suggested dispatch size when Config.BatchSize
// is left unset.
const DefaultBatchSize = 65536

// Config holds the parameters of one search run.
type Config struct {
	Dispatcher  dispatch.Dispatcher
	Matcher     *pattern.Matcher
	TargetCount int
	BatchSize   uint64
	Log         zerolog.Logger
	Metrics     *metrics.Recorder
	// ReportInterval controls how often Run logs progress; zero disables
	// periodic reporting (tests set this to avoid log spam).
	ReportInterval time.Duration
	// OnMatch is called synchronously for every verified match, in the
	// order found; used by cmd/grind to print the stdout contract and
	// persist the file. It must report whether the match was actually
	// persisted: a false return does not count against TargetCount, and
	// Run keeps searching for a replacement. If nil, matches are
	// persisted via keypair.Save directly.
	OnMatch func(foundIndex, target int, address string, kp keypair.Keypair) bool
}

// Run executes the batch loop until Config.TargetCount matches are found
// or ctx is cancelled. It returns the total number of attempts performed.
func Run(ctx context.Context, cfg Config) (uint64, error) {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = DefaultBatchSize
	}

	var totalAttempts uint64
	foundCount := 0
	start := time.Now()
	lastReport := start

	for foundCount < cfg.TargetCount {
		select {
		case <-ctx.Done():
			return totalAttempts, ctx.Err()
		default:
		}

		hostSeed0, hostSeed1, err := csprngSeed()
		if err != nil {
			return totalAttempts, fmt.Errorf("driver: draw host seed: %w", err)
		}

		result, err := cfg.Dispatcher.Dispatch(ctx, hostSeed0, hostSeed1, cfg.BatchSize, cfg.Matcher)
		if err != nil {
			return totalAttempts, fmt.Errorf("driver: dispatch: %w", err)
		}

		totalAttempts += result.Attempts
		if cfg.Metrics != nil {
			cfg.Metrics.Attempts.Add(float64(result.Attempts))
		}

		if result.Found {
			kp := keypair.FromPrivateKey(result.Match.PrivateKey)
			if !keypair.Verify(kp, result.Match.Address) {
				return totalAttempts, fmt.Errorf("driver: VERIFICATION FAILED for address %s", result.Match.Address)
			}

			persisted := true
			if cfg.OnMatch != nil {
				persisted = cfg.OnMatch(foundCount+1, cfg.TargetCount, result.Match.Address, kp)
			} else if err := keypair.Save(result.Match.Address, kp); err != nil {
				cfg.Log.Warn().Err(err).Str("address", result.Match.Address).Msg("failed to persist match")
				persisted = false
			}

			if persisted {
				foundCount++
				if cfg.Metrics != nil {
					cfg.Metrics.Matches.Inc()
				}
			}
			continue
		}

		if cfg.ReportInterval > 0 && time.Since(lastReport) >= cfg.ReportInterval {
			reportProgress(cfg, totalAttempts, start)
			lastReport = time.Now()
		}
	}

	return totalAttempts, nil
}

func reportProgress(cfg Config, totalAttempts uint64, start time.Time) {
	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 {
		return
	}
	rate := float64(totalAttempts) / elapsed
	if cfg.Metrics != nil {
		cfg.Metrics.Rate.Set(rate)
	}

	effLen := difficulty.EffectiveLen(cfg.Matcher.Raw())
	expected := difficulty.Expected(effLen, difficulty.AlphabetSize(cfg.Matcher.CaseSensitive()), cfg.Matcher.Mode() == pattern.ModeAnywhere, cfg.Matcher.Len())
	p50 := difficulty.P50(expected)

	var etaSeconds float64
	if rate > 0 {
		etaSeconds = p50 / rate
	}

	cfg.Log.Info().
		Uint64("attempts", totalAttempts).
		Float64("rate_per_sec", rate).
		Dur("eta_p50", time.Duration(etaSeconds)*time.Second).
		Msg("search progress")
}

// csprngSeed draws a fresh 128-bit host seed from a CSPRNG, reseeded
// before every dispatch so a crash or restart can never replay a batch.
func csprngSeed() (uint64, uint64, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:]), nil
}
