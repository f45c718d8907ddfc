package engine

import (
	"database/sql/driver"
	"fmt"
	"math"
	"sync"

	sqlite "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterReportFunctions registers fmt_runtime with the driver so it is
// available on connections opened after this call. Repeated calls are no-ops.
func RegisterReportFunctions() error {
	registerOnce.Do(func() {
		registerErr = sqlite.RegisterDeterministicScalarFunction("fmt_runtime", 1, fmtRuntimeImpl)
	})
	return registerErr
}

func fmtRuntimeImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("fmt_runtime: expected 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case nil:
		return FormatRuntime(math.Inf(1)), nil
	case float64:
		return FormatRuntime(v), nil
	case int64:
		return FormatRuntime(float64(v)), nil
	default:
		return nil, fmt.Errorf("fmt_runtime: unsupported argument type %T; want REAL", v)
	}
}

// FormatRuntime renders seconds with the largest unit that keeps the value
// at or above one: s, ms, µs or ns. Infinite runtimes render as "inf".
func FormatRuntime(seconds float64) string {
	switch {
	case math.IsInf(seconds, 1) || math.IsNaN(seconds):
		return "inf"
	case seconds >= 1:
		return fmt.Sprintf("%.2f s", seconds)
	case seconds >= 1e-3:
		return fmt.Sprintf("%.2f ms", seconds*1e3)
	case seconds >= 1e-6:
		return fmt.Sprintf("%.2f µs", seconds*1e6)
	default:
		return fmt.Sprintf("%.2f ns", seconds*1e9)
	}
}
