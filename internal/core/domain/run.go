package domain

import "time"

// Pipeline names a batch pipeline.
type Pipeline string

// Available pipelines.
const (
	PipelineExtract   Pipeline = "extract"
	PipelineNormalize Pipeline = "normalize"
)

// IsValid returns true if the pipeline is recognised.
func (p Pipeline) IsValid() bool {
	return p == PipelineExtract || p == PipelineNormalize
}

// String returns the string representation.
func (p Pipeline) String() string {
	return string(p)
}

// Result is the outcome of processing one manifest row or one file.
type Result struct {
	// Source is the input file path (or manifest file name when the input
	// could not be resolved).
	Source string

	// Output is the written file path. Empty on failure.
	Output string

	// Err is nil on success.
	Err error
}

// OK returns true if the item was processed successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// Message returns the error text, or an empty string on success.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Outputs returns the output paths of the successful results, in order.
func Outputs(results []Result) []string {
	var out []string
	for _, r := range results {
		if r.OK() {
			out = append(out, r.Output)
		}
	}
	return out
}

// RunRecord is a persisted Result. Errors are flattened to their message.
type RunRecord struct {
	Source  string
	Output  string
	Success bool
	Message string
}

// Run is one execution of a pipeline over a batch.
type Run struct {
	ID         string
	Pipeline   Pipeline
	StartedAt  time.Time
	FinishedAt time.Time
	Records    []RunRecord
}

// NewRunRecords flattens results for persistence.
func NewRunRecords(results []Result) []RunRecord {
	records := make([]RunRecord, len(results))
	for i, r := range results {
		records[i] = RunRecord{
			Source:  r.Source,
			Output:  r.Output,
			Success: r.OK(),
			Message: r.Message(),
		}
	}
	return records
}

// Succeeded returns the number of successful records.
func (r *Run) Succeeded() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Success {
			n++
		}
	}
	return n
}

// Failed returns the number of failed records.
func (r *Run) Failed() int {
	return len(r.Records) - r.Succeeded()
}

// Duration returns how long the run took.
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
