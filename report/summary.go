package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// TestcaseOutput is the summary record of one solved testcase.
type TestcaseOutput struct {
	Name string `json:"name"`
	// Runtime is the search time in seconds.
	Runtime  float64 `json:"runtime"`
	SetCount int     `json:"set_count"`
	// SetIndices are 0-based set indices in ascending order.
	SetIndices []int `json:"set_indices"`
}

// Summary is the machine readable result of a batch of testcases, in the
// shape shared with reference solvers.
type Summary struct {
	TotalRuntime    float64          `json:"total_runtime"`
	TestcaseOutputs []TestcaseOutput `json:"testcase_outputs"`
	// Unfinished names testcases that did not complete. They are not part of
	// TotalRuntime.
	Unfinished []string `json:"unfinished,omitempty"`
}

// Output converts the report into a summary record for the named testcase.
func (r *Report) Output(name string) TestcaseOutput {
	indices := make([]int, len(r.Included))
	for i, id := range r.Included {
		indices[i] = id - 1
	}
	return TestcaseOutput{
		Name:       name,
		Runtime:    r.Elapsed.Seconds(),
		SetCount:   len(indices),
		SetIndices: indices,
	}
}

// Add appends a finished testcase.
func (s *Summary) Add(out TestcaseOutput) {
	s.TestcaseOutputs = append(s.TestcaseOutputs, out)
	s.TotalRuntime += out.Runtime
}

// MarkUnfinished records a testcase that did not complete.
func (s *Summary) MarkUnfinished(name string) {
	s.Unfinished = append(s.Unfinished, name)
}

// Lookup returns the record of the named testcase.
func (s *Summary) Lookup(name string) (TestcaseOutput, bool) {
	for _, out := range s.TestcaseOutputs {
		if out.Name == name {
			return out, true
		}
	}
	return TestcaseOutput{}, false
}

// Finished reports whether the named testcase is recorded as unfinished.
func (s *Summary) Finished(name string) bool {
	for _, n := range s.Unfinished {
		if n == name {
			return false
		}
	}
	return true
}

// Names returns every testcase name, finished ones first, in record order.
func (s *Summary) Names() []string {
	names := make([]string, 0, len(s.TestcaseOutputs)+len(s.Unfinished))
	for _, out := range s.TestcaseOutputs {
		names = append(names, out.Name)
	}
	return append(names, s.Unfinished...)
}

// WriteJSON writes s as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Save writes s to path.
func (s *Summary) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "report: create summary")
	}
	if err := s.WriteJSON(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "report: write summary %s", path)
	}
	return errors.Wrap(f.Close(), "report: close summary")
}

// ReadSummary decodes a JSON summary.
func ReadSummary(r io.Reader) (*Summary, error) {
	var s Summary
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "report: decode summary")
	}
	return &s, nil
}

// LoadSummary reads a JSON summary from path.
func LoadSummary(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "report: open summary")
	}
	defer f.Close()
	s, err := ReadSummary(f)
	if err != nil {
		return nil, errors.Wrapf(err, "report: %s", path)
	}
	return s, nil
}
