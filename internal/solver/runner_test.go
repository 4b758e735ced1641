package solver

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRunner(stdout, stderr string, err error) *Runner {
	r := NewRunner("", nil, 0)
	r.exec = func(context.Context, string, []string, string) (string, string, error) {
		return stdout, stderr, err
	}
	return r
}

func TestRunnerDefaults(t *testing.T) {
	r := NewRunner("", nil, 0)
	assert.Equal(t, "z3", r.path)
	assert.Equal(t, []string{"-in", "-smt2"}, r.args)
	assert.Equal(t, DefaultTimeout, r.timeout)
}

func TestRunnerSat(t *testing.T) {
	r := stubRunner("sat\n(\n  (define-fun x () Int 5)\n)", "", nil)

	raw, err := r.Check(context.Background(), "(check-sat)")
	require.NoError(t, err)
	assert.True(t, raw.Sat)
	assert.Contains(t, raw.Model, "define-fun x")
}

func TestRunnerUnsat(t *testing.T) {
	r := stubRunner("unsat\n", "", nil)

	raw, err := r.Check(context.Background(), "(check-sat)")
	require.NoError(t, err)
	assert.False(t, raw.Sat)
	assert.Empty(t, raw.Model)
}

func TestRunnerUnknownIsAnError(t *testing.T) {
	r := stubRunner("unknown\n", "", nil)

	_, err := r.Check(context.Background(), "(check-sat)")
	require.Error(t, err)
	var ierr *InvocationError
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Reason, "unknown")
}

func TestRunnerGarbageOutput(t *testing.T) {
	r := stubRunner("(error \"line 1: unexpected token\")", "", nil)

	_, err := r.Check(context.Background(), "(check-sat)")
	var ierr *InvocationError
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Reason, "unrecognized solver output")
}

func TestRunnerProcessFailure(t *testing.T) {
	r := stubRunner("", "z3: command not found", fmt.Errorf("exec failed"))

	_, err := r.Check(context.Background(), "(check-sat)")
	var ierr *InvocationError
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Reason, "solver process failed")
	assert.Contains(t, ierr.Stderr, "not found")
}

func TestRunnerNonzeroExitWithUsableOutput(t *testing.T) {
	// solvers exit nonzero after printing (error ...) lines but may
	// still have answered first
	r := stubRunner("sat\n(model)", "", fmt.Errorf("exit status 1"))

	raw, err := r.Check(context.Background(), "(check-sat)")
	require.NoError(t, err)
	assert.True(t, raw.Sat)
}

func TestRunnerTimeout(t *testing.T) {
	r := NewRunner("", nil, 10*time.Millisecond)
	r.exec = func(ctx context.Context, _ string, _ []string, _ string) (string, string, error) {
		<-ctx.Done()
		return "", "", ctx.Err()
	}

	_, err := r.Check(context.Background(), "(check-sat)")
	var ierr *InvocationError
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Reason, "timed out")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestInvocationErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := &InvocationError{Reason: "solver process failed", Err: cause}
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "boom")
}
