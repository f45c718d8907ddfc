package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DidNotFinish is the whole content of a text report for a testcase that
// was abandoned.
const DidNotFinish = "did not finish"

var (
	headerPattern   = regexp.MustCompile(`Found minimum set cover containing (\d+) sets in ([\d.]+) seconds\.`)
	includedPattern = regexp.MustCompile(`Included sets: \[([\d, ]*)\]`)
)

// ParseText reads a text report back into a summary record. The included
// identities are converted to 0-based indices. finished is false when the
// report only says "did not finish".
func ParseText(name string, r io.Reader) (out TestcaseOutput, finished bool, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return out, false, errors.Wrap(err, "report: read text report")
	}
	content := string(data)
	out.Name = name
	if strings.EqualFold(strings.TrimSpace(content), DidNotFinish) {
		return out, false, nil
	}
	header := headerPattern.FindStringSubmatch(content)
	if header == nil {
		return out, false, fmt.Errorf("report: %s: missing cover header", name)
	}
	if out.SetCount, err = strconv.Atoi(header[1]); err != nil {
		return out, false, fmt.Errorf("report: %s: bad set count %q", name, header[1])
	}
	if out.Runtime, err = strconv.ParseFloat(header[2], 64); err != nil {
		return out, false, fmt.Errorf("report: %s: bad runtime %q", name, header[2])
	}
	included := includedPattern.FindStringSubmatch(content)
	if included == nil {
		return out, false, fmt.Errorf("report: %s: missing included sets", name)
	}
	out.SetIndices = []int{}
	for _, field := range strings.Split(included[1], ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil {
			return out, false, fmt.Errorf("report: %s: bad set identity %q", name, field)
		}
		out.SetIndices = append(out.SetIndices, id-1)
	}
	if len(out.SetIndices) != out.SetCount {
		return out, false, fmt.Errorf("report: %s: header claims %d sets, %d listed", name, out.SetCount, len(out.SetIndices))
	}
	return out, true, nil
}

// LoadTextDir builds a summary from every <name>.txt text report in dir,
// in name order.
func LoadTextDir(dir string) (*Summary, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, errors.Wrap(err, "report: list text reports")
	}
	sort.Strings(paths)
	summary := &Summary{}
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".txt")
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "report: open text report")
		}
		out, finished, err := ParseText(name, f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		if !finished {
			summary.MarkUnfinished(name)
			continue
		}
		summary.Add(out)
	}
	return summary, nil
}
