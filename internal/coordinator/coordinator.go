package coordinator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/halvard-labs/serialcheck/certificate"
	"github.com/halvard-labs/serialcheck/internal/errkit"
	"github.com/halvard-labs/serialcheck/internal/runnerconfig"
	"github.com/halvard-labs/serialcheck/internal/smpt"
	"github.com/halvard-labs/serialcheck/lower"
	"github.com/halvard-labs/serialcheck/optimize"
	"github.com/halvard-labs/serialcheck/oracle"
	"github.com/halvard-labs/serialcheck/petri"
	"github.com/halvard-labs/serialcheck/program"
	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
	"github.com/halvard-labs/serialcheck/serialnfa"
	"github.com/halvard-labs/serialcheck/stats"
)

// Decide runs the full pipeline for one query — example names the run for
// the stats record and the output subdirectory; reqs are the concurrent
// request programs sharing global state; initial is the starting global
// vector, in the order the requests' (agreed-upon) Globals list names. It
// always returns a populated stats.Record, even on failure, so the caller
// can append it to the run log regardless of outcome.
func Decide(ctx context.Context, log zerolog.Logger, cfg runnerconfig.Config, example string, reqs []program.Request, initial []int64) (stats.Record, error) {
	runStart := time.Now()
	rec := stats.Record{
		RunID:        uuid.NewString(),
		Example:      example,
		Switches:     stats.FromSwitches(cfg.Switches),
		StageTimings: map[string]float64{},
	}

	if len(reqs) == 0 {
		return fail(rec, errkit.NewInternalError("no_requests", ErrNoRequests))
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	o, err := buildOracle(cfg, log)
	if err != nil {
		return fail(rec, err)
	}

	globals, err := globalsSchema(reqs)
	if err != nil {
		return fail(rec, err)
	}

	summaries, componentCount, err := summarize(ctx, log, o, globals, reqs, cfg, rec.StageTimings)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			rec.Result = stats.ResultTimeout
			return rec, nil
		}

		return fail(rec, err)
	}
	rec.ComponentCount = componentCount

	net, marking, err := petri.Translate(globals, initial, summaries, petri.Options{WithRequests: true})
	if err != nil {
		return fail(rec, errkit.NewInternalError("petri_translate", err))
	}
	rec.PlaceCount = len(net.Places)
	rec.TransitionCount = len(net.Transitions)

	automaton, err := serialnfa.Build(globals, summaries)
	if err != nil {
		return fail(rec, errkit.NewInternalError("serialnfa_build", err))
	}
	seq, err := serialnfa.Reach(ctx, o, automaton, initial)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			rec.Result = stats.ResultTimeout
			return rec, nil
		}

		return fail(rec, errkit.NewOracleError("serialnfa_reach", true, err))
	}
	rec.DisjunctCount = len(seq.Linears)

	artifacts, err := writeArtifacts(cfg.OutputDir, example, net, marking, seq)
	if err != nil {
		return fail(rec, errkit.NewInternalError("write_artifacts", err))
	}

	checker, err := smpt.NewChecker(log)
	if err != nil {
		rec.CPUSeconds = time.Since(runStart).Seconds()
		oerr := errkit.NewOracleError("smpt_new_checker", false, err)
		rec.Result = stats.ResultError
		rec.Error = oerr.Error()

		return rec, oerr
	}

	result, err := checker.Check(ctx, artifacts.netPath, artifacts.queryPath, artifacts.proofPath, cfg.Timeout)
	if err != nil {
		return fail(rec, errkit.NewOracleError("smpt_check", true, err))
	}

	switch result.Verdict {
	case smpt.TimedOut:
		rec.Result = stats.ResultTimeout
	case smpt.Reachable:
		rec.Result = stats.ResultNotSerializable
	case smpt.NotReachable:
		inv, err := certificate.ParseInvariant(globals, result.InvariantText)
		if err != nil {
			return fail(rec, errkit.NewParseError("smpt_proof", err))
		}
		if err := certificate.CheckSerial(ctx, o, globals, net, initial, seq, inv); err != nil {
			var invalid *certificate.InvalidProofError
			obligation := "unknown"
			if errors.As(err, &invalid) {
				obligation = invalid.Obligation.String()
			}

			return fail(rec, errkit.NewInvalidProofError(obligation, err))
		}
		rec.Result = stats.ResultSerializable
	}

	rec.CPUSeconds = time.Since(runStart).Seconds()

	return rec, nil
}

func fail(rec stats.Record, err error) (stats.Record, error) {
	rec.Result = stats.ResultError
	rec.Error = err.Error()

	return rec, err
}

func buildOracle(cfg runnerconfig.Config, log zerolog.Logger) (semilinear.Oracle, error) {
	switch cfg.Backend {
	case runnerconfig.BackendSubprocess:
		sp, err := oracle.NewSubprocess(log)
		if err != nil {
			return nil, errkit.NewOracleError("oracle_subprocess_init", false, err)
		}

		return sp, nil
	case runnerconfig.BackendNative, "":
		return oracle.NewNative(oracle.DefaultConfig()), nil
	default:
		return nil, errkit.NewInternalError("unknown_backend", runnerconfig.ErrUnknownBackend)
	}
}

// globalsSchema builds the shared global-variable schema every request in
// the query must agree on — same names, same order — since petri.Translate
// and serialnfa.Build both key their value places by that single ordering.
// Requests must also agree on whether they declare a Return expression:
// mixing a returning request with a non-returning one in the same batch
// would leave lower.ReturnDim populated for some summaries and absent from
// others, so it is rejected the same way a globals-name mismatch is.
func globalsSchema(reqs []program.Request) (*schema.Schema, error) {
	first := reqs[0].Globals
	returning := reqs[0].Return != nil
	for _, req := range reqs[1:] {
		if !sameNames(req.Globals, first) {
			return nil, errkit.NewSchemaError(req.Name, ErrGlobalsMismatch)
		}
		if (req.Return != nil) != returning {
			return nil, errkit.NewSchemaError(req.Name, ErrGlobalsMismatch)
		}
	}

	dims := make([]schema.Dim, 0, len(first)+1)
	for _, g := range first {
		dims = append(dims, schema.Dim{Name: g, Kind: schema.Global})
	}
	if returning {
		dims = append(dims, schema.Dim{Name: lower.ReturnDim, Kind: schema.Global})
	}

	sch, err := schema.New(dims...)
	if err != nil {
		return nil, errkit.NewSchemaError(reqs[0].Name, err)
	}

	return sch, nil
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// summarize lowers and evaluates every request's body to a relation over
// the full (global+local) schema, then projects locals away so every
// summary shares the same global-only doubled schema petri.Translate and
// serialnfa.Build require.
func summarize(ctx context.Context, log zerolog.Logger, o semilinear.Oracle, globals *schema.Schema, reqs []program.Request, cfg runnerconfig.Config, timings map[string]float64) ([]petri.NamedSummary, int, error) {
	doubling, err := schema.Double(globals)
	if err != nil {
		return nil, 0, errkit.NewSchemaError("globals", err)
	}

	summaries := make([]petri.NamedSummary, 0, len(reqs))
	components := 0
	for _, req := range reqs {
		stageStart := time.Now()
		lw, expr, err := lower.Request(req)
		if err != nil {
			return nil, 0, errkit.NewParseError(req.Name, err)
		}

		rel, err := optimize.Eval(ctx, o, lw.Base, expr, cfg.Switches)
		if err != nil {
			return nil, 0, err
		}

		projected, err := projectToGlobals(ctx, o, rel, req.Locals)
		if err != nil {
			return nil, 0, err
		}
		if !projected.Schema.Equal(doubling.Doubled) {
			return nil, 0, errkit.NewSchemaError(req.Name, ErrGlobalsMismatch)
		}

		summaries = append(summaries, petri.NamedSummary{Name: req.Name, Summary: projected})
		components += len(projected.Linears)
		timings["lower:"+req.Name] = time.Since(stageStart).Seconds()
		log.Debug().Str("request", req.Name).Int("components", len(projected.Linears)).Msg("request summarized")
	}

	return summaries, components, nil
}

func projectToGlobals(ctx context.Context, o semilinear.Oracle, rel semilinear.Set, locals []string) (semilinear.Set, error) {
	if len(locals) == 0 {
		return rel, nil
	}
	eliminate := make([]string, 0, 2*len(locals))
	for _, l := range locals {
		eliminate = append(eliminate, "pre:"+l, "post:"+l)
	}

	return semilinear.Project(ctx, o, rel, eliminate)
}

type artifactPaths struct {
	netPath   string
	queryPath string
	proofPath string
}

// writeArtifacts renders the net and the serial-reachable set to disk
// under cfg.OutputDir/example. queryPath holds Seq's textual form — a
// diagnostic artifact, not the real XML query format the external checker
// expects (that compiler is out of scope, consistent with internal/smpt's
// documented boundary); the external checker is expected to read netPath
// and negate the query itself.
func writeArtifacts(outputDir, example string, net *petri.Net, marking petri.Marking, seq semilinear.Set) (artifactPaths, error) {
	dir := filepath.Join(outputDir, example)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return artifactPaths{}, err
	}

	paths := artifactPaths{
		netPath:   filepath.Join(dir, "petri_with_requests.net"),
		queryPath: filepath.Join(dir, "serial_reachable.txt"),
		proofPath: filepath.Join(dir, "smpt_proof.txt"),
	}

	netFile, err := os.Create(paths.netPath)
	if err != nil {
		return artifactPaths{}, err
	}
	defer netFile.Close()
	if err := petri.WriteNet(netFile, net, marking); err != nil {
		return artifactPaths{}, err
	}

	if err := os.WriteFile(paths.queryPath, []byte(certificate.FormatInvariant(seq)), 0o644); err != nil {
		return artifactPaths{}, err
	}

	return paths, nil
}
