package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/halvard-labs/serialcheck/schema"
	"github.com/halvard-labs/serialcheck/semilinear"
)

// wireRequest/wireResponse are the JSON envelopes exchanged with the
// external integer-set binary. One request covers exactly one Oracle call;
// Op names which of the four operations is being asked for.
type wireRequest struct {
	Op      string    `json:"op"`
	Dims    int       `json:"dims"`
	Base    []int64   `json:"base,omitempty"`
	Periods [][]int64 `json:"periods,omitempty"`
	Other   *wireSet  `json:"other,omitempty"`
	Keep    []int     `json:"keep,omitempty"`
	Lhs     *wireSet  `json:"lhs,omitempty"`
	Rhs     *wireSet  `json:"rhs,omitempty"`
}

type wireSet struct {
	Linears []wireLinear `json:"linears"`
}

type wireLinear struct {
	Base    []int64   `json:"base"`
	Periods [][]int64 `json:"periods"`
}

type wireResponse struct {
	Empty   bool         `json:"empty"`
	Subset  bool         `json:"subset"`
	Linears []wireLinear `json:"linears"`
	Error   string       `json:"error,omitempty"`
}

// Subprocess adapts an external integer-set decision procedure, located via
// the ISL_PREFIX environment variable, to semilinear.Oracle.
// The binary is invoked once per call with a single JSON request on stdin
// and is expected to print a single JSON response on stdout; no
// long-lived process is held between calls. The coordinator uses
// Subprocess only when its configured backend selects it.
type Subprocess struct {
	// BinaryPath is the resolved path to the integer-set executable. If
	// empty, NewSubprocess resolves it from ISL_PREFIX.
	BinaryPath string
	Logger     zerolog.Logger
}

// NewSubprocess resolves the binary from ISL_PREFIX (a directory containing
// an "islsolve" executable) and returns a Subprocess, or
// ErrSubprocessUnavailable if the binary cannot be found or is not
// executable.
func NewSubprocess(logger zerolog.Logger) (*Subprocess, error) {
	prefix := os.Getenv("ISL_PREFIX")
	if prefix == "" {
		return nil, errors.Wrap(ErrSubprocessUnavailable, "ISL_PREFIX is not set")
	}
	bin := filepath.Join(prefix, "islsolve")
	info, err := os.Stat(bin)
	if err != nil {
		return nil, errors.Wrapf(ErrSubprocessUnavailable, "stat %s: %v", bin, err)
	}
	if info.Mode()&0o111 == 0 {
		return nil, errors.Wrapf(ErrSubprocessUnavailable, "%s is not executable", bin)
	}

	return &Subprocess{BinaryPath: bin, Logger: logger}, nil
}

func (s *Subprocess) call(ctx context.Context, req wireRequest) (wireResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return wireResponse{}, errors.Wrap(err, "oracle: marshal subprocess request")
	}

	cmd := exec.CommandContext(ctx, s.BinaryPath)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.Logger.Debug().Str("op", req.Op).Int("dims", req.Dims).Msg("invoking integer-set subprocess")

	if err := cmd.Run(); err != nil {
		return wireResponse{}, errors.Wrapf(ErrSubprocessFailed, "%s: %v (stderr: %s)", req.Op, err, stderr.String())
	}

	var resp wireResponse
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return wireResponse{}, errors.Wrapf(ErrSubprocessFailed, "%s: decode response: %v", req.Op, err)
	}
	if resp.Error != "" {
		return wireResponse{}, errors.Wrapf(ErrSubprocessFailed, "%s: %s", req.Op, resp.Error)
	}

	return resp, nil
}

func toWireSet(s semilinear.Set) *wireSet {
	ws := &wireSet{Linears: make([]wireLinear, len(s.Linears))}
	for i, l := range s.Linears {
		ws.Linears[i] = wireLinear{Base: l.Base, Periods: l.Periods}
	}

	return ws
}

// Emptiness asks the subprocess to decide feasibility of l's implicit
// constraint system. Unlike Native, Subprocess does not assume a bare
// generator-form LinearSet is trivially non-empty: it returns whatever the
// external binary reports.
func (s *Subprocess) Emptiness(ctx context.Context, sch *schema.Schema, l semilinear.LinearSet) (bool, error) {
	resp, err := s.call(ctx, wireRequest{Op: "emptiness", Dims: sch.Len(), Base: l.Base, Periods: l.Periods})
	if err != nil {
		return false, err
	}

	return resp.Empty, nil
}

func (s *Subprocess) Intersect(ctx context.Context, sch *schema.Schema, a, b semilinear.LinearSet) ([]semilinear.LinearSet, error) {
	resp, err := s.call(ctx, wireRequest{
		Op: "intersect", Dims: sch.Len(),
		Base: a.Base, Periods: a.Periods,
		Other: &wireSet{Linears: []wireLinear{{Base: b.Base, Periods: b.Periods}}},
	})
	if err != nil {
		return nil, err
	}

	return fromWireLinears(resp.Linears), nil
}

func (s *Subprocess) Project(ctx context.Context, sch *schema.Schema, l semilinear.LinearSet, keep []int) ([]semilinear.LinearSet, error) {
	resp, err := s.call(ctx, wireRequest{Op: "project", Dims: sch.Len(), Base: l.Base, Periods: l.Periods, Keep: keep})
	if err != nil {
		return nil, err
	}

	return fromWireLinears(resp.Linears), nil
}

func (s *Subprocess) Subset(ctx context.Context, sch *schema.Schema, a, b semilinear.Set) (bool, error) {
	resp, err := s.call(ctx, wireRequest{Op: "subset", Dims: sch.Len(), Lhs: toWireSet(a), Rhs: toWireSet(b)})
	if err != nil {
		return false, err
	}

	return resp.Subset, nil
}

func fromWireLinears(wl []wireLinear) []semilinear.LinearSet {
	out := make([]semilinear.LinearSet, len(wl))
	for i, l := range wl {
		out[i] = semilinear.LinearSet{Base: l.Base, Periods: l.Periods}
	}

	return out
}
