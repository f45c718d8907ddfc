package main

import (
	"errors"

	"github.com/viant/setcover/instance"
	"github.com/viant/setcover/report"
	"github.com/viant/setcover/solver"
)

const (
	exitOK = iota
	exitFailure
	exitMalformed
	exitCoverage
	exitUnsatisfiable
	exitTimeout
)

// exitCode maps typed failures to distinct process exit codes.
func exitCode(err error) int {
	var (
		malformed *instance.MalformedInputError
		violation *report.CoverageInvariantViolation
		unsat     *solver.UnsatisfiableError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &malformed):
		return exitMalformed
	case errors.As(err, &violation):
		return exitCoverage
	case errors.As(err, &unsat):
		return exitUnsatisfiable
	case errors.Is(err, solver.ErrTimeout):
		return exitTimeout
	default:
		return exitFailure
	}
}
