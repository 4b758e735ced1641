package solver

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds one solver invocation.
const DefaultTimeout = 30 * time.Second

// InvocationError covers everything that went wrong outside the
// logic: a missing binary, a timeout, a crash, or an answer that is
// neither sat nor unsat. It is a different failure mode from an
// invalid principle and is reported as one.
type InvocationError struct {
	Reason string
	Stderr string
	Err    error
}

func (e *InvocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("solver invocation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("solver invocation failed: %s", e.Reason)
}

func (e *InvocationError) Unwrap() error { return e.Err }

// RawResult is one solver answer before interpretation.
type RawResult struct {
	Sat   bool
	Model string
}

// Runner invokes an external SMT solver, feeding the script on stdin.
type Runner struct {
	path    string
	args    []string
	timeout time.Duration
	exec    execFunc
}

// execFunc runs the solver process and returns its stdout. Swappable
// in tests.
type execFunc func(ctx context.Context, path string, args []string, stdin string) (stdout, stderr string, err error)

func NewRunner(path string, args []string, timeout time.Duration) *Runner {
	if path == "" {
		path = "z3"
	}
	if len(args) == 0 {
		args = []string{"-in", "-smt2"}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{path: path, args: args, timeout: timeout, exec: runProcess}
}

// Check runs one query and returns the raw sat/unsat answer with any
// model text that followed it.
func (r *Runner) Check(ctx context.Context, query string) (*RawResult, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	stdout, stderr, err := r.exec(runCtx, r.path, r.args, query)
	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, &InvocationError{
				Reason: fmt.Sprintf("timed out after %s", r.timeout),
				Stderr: stderr,
				Err:    err,
			}
		}
		// solvers exit nonzero on (error ...) output; keep whatever
		// they printed for the report
		if stdout == "" {
			return nil, &InvocationError{Reason: "solver process failed", Stderr: stderr, Err: err}
		}
	}

	answer, model, found := strings.Cut(strings.TrimSpace(stdout), "\n")
	if !found {
		model = ""
	}
	switch strings.TrimSpace(answer) {
	case "sat":
		return &RawResult{Sat: true, Model: model}, nil
	case "unsat":
		return &RawResult{Sat: false}, nil
	case "unknown":
		return nil, &InvocationError{Reason: "solver answered unknown", Stderr: stderr}
	default:
		return nil, &InvocationError{
			Reason: fmt.Sprintf("unrecognized solver output %q", firstLine(stdout)),
			Stderr: stderr,
		}
	}
}

func runProcess(ctx context.Context, path string, args []string, stdin string) (string, string, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	if len(line) > 80 {
		line = line[:80]
	}
	return line
}
