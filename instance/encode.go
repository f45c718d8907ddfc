package instance

import (
	"bufio"
	"io"
	"strconv"
)

// Encode writes inst in the format read by Parse. Members are written in
// ascending order and the output has no trailing newline.
func Encode(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(inst.ElementCount))
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(len(inst.Entries)))
	for _, e := range inst.Entries {
		bw.WriteByte('\n')
		for i, m := range e.Original {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(m))
		}
	}
	return bw.Flush()
}
