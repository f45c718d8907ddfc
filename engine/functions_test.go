package engine

import (
	"math"
	"testing"
)

func TestFormatRuntime(t *testing.T) {
	var testCases = []struct {
		in     float64
		expect string
	}{
		{math.Inf(1), "inf"},
		{12.3456, "12.35 s"},
		{1, "1.00 s"},
		{0.0456, "45.60 ms"},
		{0.000123, "123.00 µs"},
		{4.2e-8, "42.00 ns"},
	}
	for _, testCase := range testCases {
		if got := FormatRuntime(testCase.in); got != testCase.expect {
			t.Fatalf("FormatRuntime(%v) = %q, want %q", testCase.in, got, testCase.expect)
		}
	}
}

func TestFmtRuntimeSQL(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	var text string
	if err := db.QueryRow(`SELECT fmt_runtime(?)`, 2.5).Scan(&text); err != nil {
		t.Fatalf("fmt_runtime(2.5) query failed: %v", err)
	}
	if text != "2.50 s" {
		t.Fatalf("fmt_runtime(2.5) = %q, want %q", text, "2.50 s")
	}
	if err := db.QueryRow(`SELECT fmt_runtime(NULL)`).Scan(&text); err != nil {
		t.Fatalf("fmt_runtime(NULL) query failed: %v", err)
	}
	if text != "inf" {
		t.Fatalf("fmt_runtime(NULL) = %q, want inf", text)
	}
	if err := db.QueryRow(`SELECT fmt_runtime(3)`).Scan(&text); err != nil {
		t.Fatalf("fmt_runtime(3) query failed: %v", err)
	}
	if text != "3.00 s" {
		t.Fatalf("fmt_runtime(3) = %q, want %q", text, "3.00 s")
	}
}
