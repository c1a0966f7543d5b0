package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/halvard-labs/serialcheck/internal/coordinator"
	"github.com/halvard-labs/serialcheck/internal/fixtures"
	"github.com/halvard-labs/serialcheck/internal/runnerconfig"
	"github.com/halvard-labs/serialcheck/internal/serfmt"
	"github.com/halvard-labs/serialcheck/internal/telemetry"
	"github.com/halvard-labs/serialcheck/program"
	"github.com/halvard-labs/serialcheck/stats"
)

func main() {
	var (
		timeoutSecs          int
		withoutBidirectional bool
		withoutRemoveRedund  bool
		withoutGenerateLess  bool
		withoutSmartOrder    bool
	)

	root := &cobra.Command{
		Use:   "serialcheck <input-path>",
		Short: "decides serializability of concurrent request programs",
		Long: "serialcheck reduces a set of concurrent request programs to a Petri-net\n" +
			"reachability query over semilinear target sets and asks an external\n" +
			"reachability checker whether the query is serializable.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := runnerconfig.LoadEnv(".env"); err != nil {
				return fmt.Errorf("load environment: %w", err)
			}

			cfg := runnerconfig.DefaultConfig()
			cfg.Timeout = secondsToDuration(timeoutSecs)
			if withoutBidirectional {
				cfg.Switches.Bidirectional = false
			}
			if withoutRemoveRedund {
				cfg.Switches.RemoveRedundant = false
			}
			if withoutGenerateLess {
				cfg.Switches.GenerateLess = false
			}
			if withoutSmartOrder {
				cfg.Switches.SmartKleeneOrder = false
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			example, reqs, initial, err := loadInput(args[0])
			if err != nil {
				return fmt.Errorf("load input %s: %w", args[0], err)
			}

			log := telemetry.Default()
			writer, err := stats.NewWriter(filepath.Join(cfg.OutputDir, "serializability_stats.jsonl"), log)
			if err != nil {
				return fmt.Errorf("open stats writer: %w", err)
			}
			defer writer.Close()

			rec, decideErr := coordinator.Decide(context.Background(), log, cfg, example, reqs, initial)
			if err := writer.Append(rec); err != nil {
				log.Error().Err(err).Msg("failed to append stats record")
			}

			fmt.Printf("%s: %s\n", example, rec.Result)
			if decideErr != nil {
				return decideErr
			}
			if rec.Result == stats.ResultError {
				os.Exit(1)
			}

			return nil
		},
	}

	root.Flags().IntVar(&timeoutSecs, "timeout", 60, "per-query timeout, in seconds")
	root.Flags().BoolVar(&withoutBidirectional, "without-bidirectional", false, "disable bidirectional reachability pruning")
	root.Flags().BoolVar(&withoutRemoveRedund, "without-remove-redundant", false, "disable redundant-constraint removal")
	root.Flags().BoolVar(&withoutGenerateLess, "without-generate-less", false, "disable generate-less narrowing")
	root.Flags().BoolVar(&withoutSmartOrder, "without-smart-kleene-order", false, "disable Kleene evaluation ordering heuristics")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadInput resolves path either to a bundled fixture name (no file
// extension; looked up in the registry below) or to a .ser source file
// parsed with internal/serfmt. It returns the example name for the stats
// record, the request set, and the all-zero initial global vector sized
// to the first request's globals, plus one entry for the return dimension
// when that request declares a Return expression (bundled fixtures and
// .ser files alike never need a non-zero starting state).
func loadInput(path string) (string, []program.Request, []int64, error) {
	if strings.HasSuffix(path, ".ser") {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", nil, nil, err
		}
		reqs, err := serfmt.Parse(string(data))
		if err != nil {
			return "", nil, nil, err
		}
		example := strings.TrimSuffix(filepath.Base(path), ".ser")

		return example, reqs, zeroVector(reqs), nil
	}

	reqs, err := bundledFixture(path)
	if err != nil {
		return "", nil, nil, err
	}

	return path, reqs, zeroVector(reqs), nil
}

func zeroVector(reqs []program.Request) []int64 {
	n := 0
	if len(reqs) > 0 {
		n = len(reqs[0].Globals)
		if reqs[0].Return != nil {
			n++
		}
	}

	return make([]int64, n)
}

// bundledFixture maps a bundled example's name onto internal/fixtures'
// programmatic scenario builders.
func bundledFixture(name string) ([]program.Request, error) {
	switch name {
	case "increment":
		req, err := fixtures.IncrementRequest("x")
		if err != nil {
			return nil, err
		}

		return []program.Request{req}, nil
	case "empty":
		req, err := fixtures.EmptyRequest("noop")
		if err != nil {
			return nil, err
		}

		return []program.Request{req}, nil
	case "three-switch":
		req, err := fixtures.ThreeSwitchRouting("counter")
		if err != nil {
			return nil, err
		}

		return []program.Request{req}, nil
	case "dual-inactivation":
		a, b, err := fixtures.DualInactivationMonitor("flag")
		if err != nil {
			return nil, err
		}

		return []program.Request{a, b}, nil
	default:
		return nil, fmt.Errorf("unknown bundled fixture %q (expected a .ser file or one of: increment, empty, three-switch, dual-inactivation)", name)
	}
}

func secondsToDuration(secs int) time.Duration {
	return time.Duration(secs) * time.Second
}
