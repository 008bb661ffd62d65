// Command grind is a brute-force search for an Ed25519 keypair whose
// Base58-encoded public key matches a user-supplied pattern. The flag/
// env-var/exit-code shape builds on a positional-args CLI convention,
// generalized through spf13/cobra instead of hand-parsed os.Args.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/davidzita/grind/internal/dispatch"
	"github.com/davidzita/grind/internal/driver"
	"github.com/davidzita/grind/internal/keypair"
	"github.com/davidzita/grind/internal/metrics"
	"github.com/davidzita/grind/internal/pattern"
)

// Exit codes.
const (
	exitOK             = 0
	exitInvalidPattern = 1
	exitGPURequired    = 2
)

type flags struct {
	caseSensitive bool
	prefix        bool
	suffix        bool
	anywhere      bool
	cpu           bool
	threads       int
	benchmark     bool
	metricsAddr   string
	logLevel      string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var f flags

	cmd := &cobra.Command{
		Use:           "grind <pattern>[:<count>]",
		Short:         "Brute-force search for a vanity Solana address",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
	}
	cmd.Flags().BoolVarP(&f.caseSensitive, "case-sensitive", "s", false, "case-sensitive pattern match")
	cmd.Flags().BoolVar(&f.prefix, "prefix", false, "anchor pattern at the start of the address (default)")
	cmd.Flags().BoolVar(&f.suffix, "suffix", false, "anchor pattern at the end of the address")
	cmd.Flags().BoolVar(&f.anywhere, "anywhere", false, "match pattern anywhere in the address")
	cmd.Flags().BoolVar(&f.cpu, "cpu", false, "force the CPU fallback")
	cmd.Flags().IntVar(&f.threads, "threads", 64, "work-group size for GPU, worker count for CPU")
	cmd.Flags().BoolVar(&f.benchmark, "benchmark", false, "benchmark CPU and GPU paths against pattern ZZZZ")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "expose Prometheus metrics at host:port")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "debug|info|warn|error")

	exitCode := exitOK
	cmd.RunE = func(c *cobra.Command, positional []string) error {
		exitCode = execute(c, positional, f)
		return nil
	}

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitInvalidPattern
	}
	return exitCode
}

func execute(c *cobra.Command, positional []string, f flags) int {
	log := newLogger(f.logLevel)

	if f.benchmark {
		runBenchmark(log)
		return exitOK
	}

	rawPattern, count, err := resolvePatternArg(positional)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitInvalidPattern
	}

	if err := validatePattern(rawPattern); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInvalidPattern
	}

	mode, err := resolveMode(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitInvalidPattern
	}

	caseSensitive := resolveCaseSensitive(f)
	matcher := pattern.New(rawPattern, mode, caseSensitive)

	var disp dispatch.Dispatcher
	if f.cpu {
		disp = dispatch.NewCPU(f.threads)
	} else {
		gpu := dispatch.NewGPU()
		if _, err := gpu.Dispatch(context.Background(), 0, 0, 1, matcher); err == dispatch.ErrNoGPU {
			// disp stays nil: --cpu was not given, so a missing GPU
			// backend is fatal rather than a silent downgrade.
		} else {
			disp = gpu
		}
	}
	if disp == nil {
		fmt.Fprintln(os.Stderr, "Error: GPU required but unavailable; pass --cpu to fall back")
		return exitGPURequired
	}

	rec, reg := metrics.NewRecorder()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if f.metricsAddr != "" {
		errCh := metrics.ServeHTTP(ctx, f.metricsAddr, reg, log)
		go func() {
			if err := <-errCh; err != nil {
				log.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	cfg := driver.Config{
		Dispatcher:     disp,
		Matcher:        matcher,
		TargetCount:    count,
		Log:            log,
		Metrics:        rec,
		ReportInterval: 10 * time.Second,
		OnMatch: func(foundIndex, target int, address string, kp keypair.Keypair) bool {
			return printMatch(foundIndex, target, address, kp)
		},
	}

	attempts, err := driver.Run(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			log.Info().Uint64("attempts", attempts).Msg("interrupted, search stopped")
			return exitOK
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 3
	}

	return exitOK
}

// resolvePatternArg returns the pattern and count from either the
// positional argument or the VANITY_PATTERN environment variable.
func resolvePatternArg(positional []string) (string, int, error) {
	if len(positional) > 0 {
		return parsePatternArg(positional[0])
	}
	if envPattern := os.Getenv("VANITY_PATTERN"); envPattern != "" {
		return parsePatternArg(envPattern)
	}
	return "", 0, fmt.Errorf("no pattern supplied (positional argument or VANITY_PATTERN)")
}

func resolveMode(f flags) (pattern.Mode, error) {
	set := 0
	mode := pattern.ModePrefix
	if f.prefix {
		set++
		mode = pattern.ModePrefix
	}
	if f.suffix {
		set++
		mode = pattern.ModeSuffix
	}
	if f.anywhere {
		set++
		mode = pattern.ModeAnywhere
	}
	if set > 1 {
		return mode, fmt.Errorf("only one of --prefix/--suffix/--anywhere may be given")
	}
	if set == 1 {
		return mode, nil
	}

	switch strings.ToLower(os.Getenv("MATCH_MODE")) {
	case "suffix":
		return pattern.ModeSuffix, nil
	case "anywhere":
		return pattern.ModeAnywhere, nil
	case "", "prefix":
		return pattern.ModePrefix, nil
	default:
		return mode, fmt.Errorf("invalid MATCH_MODE %q", os.Getenv("MATCH_MODE"))
	}
}

func resolveCaseSensitive(f flags) bool {
	if f.caseSensitive {
		return true
	}
	switch strings.ToLower(os.Getenv("CASE_SENSITIVE")) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// printMatch writes the per-match stdout contract and persists the
// keypair file. It reports true only when the match was both verified
// and successfully saved to disk; the caller must not count the match
// against the requested total otherwise.
func printMatch(foundIndex, target int, address string, kp keypair.Keypair) bool {
	verified := keypair.Verify(kp, address)

	fmt.Printf("*** FOUND MATCH %d/%d! ***\n", foundIndex, target)
	fmt.Printf("Address: %s\n", address)
	fmt.Printf("Public Key (Base58): %s\n", address)
	if !verified {
		fmt.Println("VERIFICATION FAILED")
		return false
	}
	fmt.Println("VERIFIED: Address matches Base58(PublicKey)")

	if err := keypair.Save(address, kp); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: failed to save keypair:", err)
		return false
	}
	fmt.Printf("Saved: %s.json\n", address)
	return true
}

func runBenchmark(log zerolog.Logger) {
	matcher := pattern.New("ZZZZ", pattern.ModePrefix, true)
	const window = 10 * time.Second

	benchOne := func(name string, d dispatch.Dispatcher) {
		ctx, cancel := context.WithTimeout(context.Background(), window)
		defer cancel()

		var attempts uint64
		start := time.Now()
		for {
			select {
			case <-ctx.Done():
				elapsed := time.Since(start).Seconds()
				fmt.Printf("%s: %d attempts in %.2fs (%.0f/s)\n", name, attempts, elapsed, float64(attempts)/elapsed)
				return
			default:
			}
			result, err := d.Dispatch(ctx, 1, 2, driver.DefaultBatchSize, matcher)
			if err != nil {
				log.Info().Str("backend", name).Err(err).Msg("benchmark dispatch unavailable")
				return
			}
			attempts += result.Attempts
		}
	}

	benchOne("cpu", dispatch.NewCPU(64))
	benchOne("gpu", dispatch.NewGPU())
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger()
}
