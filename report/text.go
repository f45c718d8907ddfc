package report

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// WriteTo writes the plain-text report:
//
//	Found minimum set cover containing <K> sets in <T> seconds.
//	Included sets: [<id>, ...]
//	Set #<id>: [<member>, ...]
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	cw.writeString("Found minimum set cover containing " + strconv.Itoa(r.Size()) +
		" sets in " + FormatSeconds(r.Elapsed) + " seconds.\n")
	cw.writeString("Included sets: " + list(r.Included) + "\n")
	for _, set := range r.Sets {
		cw.writeString("Set #" + strconv.Itoa(set.ID) + ": " + list(set.Members) + "\n")
	}
	if cw.err == nil {
		cw.err = cw.w.Flush()
	}
	return cw.n, cw.err
}

// String returns the text report.
func (r *Report) String() string {
	var sb strings.Builder
	_, _ = r.WriteTo(&sb)
	return sb.String()
}

// FormatSeconds renders d in seconds using fixed notation with at least
// three significant digits and never fewer than three decimals.
func FormatSeconds(d time.Duration) string {
	seconds := d.Seconds()
	decimals := 3
	if seconds > 0 {
		if n := 2 - int(math.Floor(math.Log10(seconds))); n > decimals {
			decimals = n
		}
	}
	return strconv.FormatFloat(seconds, 'f', decimals, 64)
}

func list(values []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) writeString(s string) {
	if c.err != nil {
		return
	}
	n, err := c.w.WriteString(s)
	c.n += int64(n)
	c.err = err
}
