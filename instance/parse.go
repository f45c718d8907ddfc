package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const maxLineSize = 16 << 20

// Parse reads an instance in the plain-text format:
//
//	line 1: element count
//	line 2: set count
//	line 3..2+set count: whitespace separated members of each set
//
// Set identities follow line order starting at 1. Blank lines after the
// declared sets are ignored.
func Parse(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "instance: read failed")
	}
	if len(lines) < 1 {
		return nil, &MalformedInputError{Line: 1, Reason: "missing element count"}
	}
	elementCount, err := parseCount(lines[0], 1, "element count")
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, &MalformedInputError{Line: 2, Reason: "missing set count"}
	}
	setCount, err := parseCount(lines[1], 2, "set count")
	if err != nil {
		return nil, err
	}
	body := lines[2:]
	if len(body) < setCount {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("declared %d sets, found %d set lines", setCount, len(body))}
	}
	for i := setCount; i < len(body); i++ {
		if strings.TrimSpace(body[i]) != "" {
			return nil, &MalformedInputError{Line: i + 3, Reason: fmt.Sprintf("declared %d sets, found extra set line", setCount)}
		}
	}
	sets := make([][]int, setCount)
	for i := 0; i < setCount; i++ {
		fields := strings.Fields(body[i])
		members := make([]int, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, &MalformedInputError{Line: i + 3, Reason: fmt.Sprintf("invalid element %q", field)}
			}
			members = append(members, v)
		}
		sets[i] = members
	}
	inst, err := Build(elementCount, sets)
	if err != nil {
		var malformed *MalformedInputError
		if errors.As(err, &malformed) && malformed.Set > 0 {
			malformed.Line = malformed.Set + 2
		}
		return nil, err
	}
	return inst, nil
}

// Load parses the instance stored at path.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "instance: open %s", path)
	}
	defer f.Close()
	inst, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "instance: load %s", path)
	}
	return inst, nil
}

func parseCount(line string, lineNo int, what string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, &MalformedInputError{Line: lineNo, Reason: fmt.Sprintf("invalid %s %q", what, strings.TrimSpace(line))}
	}
	if v <= 0 {
		return 0, &MalformedInputError{Line: lineNo, Reason: fmt.Sprintf("%s must be positive, got %d", what, v)}
	}
	return v, nil
}
