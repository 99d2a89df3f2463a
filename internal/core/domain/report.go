package domain

import (
	"fmt"
	"time"
)

// Stage names the pipeline step a document failed in.
type Stage string

// Pipeline stages.
const (
	StageClassify  Stage = "classify"
	StageExtract   Stage = "extract"
	StageAggregate Stage = "aggregate"
)

// DocumentError describes why a single document produced no record.
type DocumentError struct {
	Document Document
	Stage    Stage
	Err      error
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s/%s: %s: %v", e.Document.Category, e.Document.FileName(), e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// DocumentResult is the outcome of processing one document:
// either a record or a failure, never both.
type DocumentResult struct {
	Document Document
	Record   *ExtractedRecord
	Err      *DocumentError
}

// Succeeded returns a successful result carrying rec.
func Succeeded(doc Document, rec ExtractedRecord) DocumentResult {
	return DocumentResult{Document: doc, Record: &rec}
}

// Failed returns a failed result for doc at stage.
func Failed(doc Document, stage Stage, err error) DocumentResult {
	return DocumentResult{Document: doc, Err: &DocumentError{Document: doc, Stage: stage, Err: err}}
}

// OK returns true if the document produced a record.
func (r DocumentResult) OK() bool {
	return r.Err == nil && r.Record != nil
}

// RunReport summarises a batch run.
type RunReport struct {
	// RunID uniquely identifies the run.
	RunID string

	// StartedAt is when enumeration began.
	StartedAt time.Time

	// FinishedAt is when the output was written.
	FinishedAt time.Time

	// OutputPath is where the records were serialised.
	OutputPath string

	// Results holds one entry per processed document, in processing order.
	Results []DocumentResult

	// SkippedCategories lists configured categories whose folder was missing.
	SkippedCategories []string
}

// Records returns the records of all successful results, in order.
func (r *RunReport) Records() []ExtractedRecord {
	records := make([]ExtractedRecord, 0, len(r.Results))
	for _, res := range r.Results {
		if res.OK() {
			records = append(records, *res.Record)
		}
	}
	return records
}

// Failures returns the errors of all failed results, in order.
func (r *RunReport) Failures() []*DocumentError {
	var failures []*DocumentError
	for _, res := range r.Results {
		if res.Err != nil {
			failures = append(failures, res.Err)
		}
	}
	return failures
}

// Succeeded returns the number of documents that produced a record.
func (r *RunReport) Succeeded() int {
	return len(r.Results) - r.Failed()
}

// Failed returns the number of documents that failed.
func (r *RunReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Duration returns the wall-clock time of the run.
func (r *RunReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Progress is emitted twice per document: once before processing, with a nil
// Result, and once after.
type Progress struct {
	// Index is the 1-based position of Document in the run.
	Index int

	// Total is the number of documents enumerated.
	Total int

	Document Document
	Result   *DocumentResult
}

// Done returns true for the event emitted after the document was processed.
func (p Progress) Done() bool {
	return p.Result != nil
}
