package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driving"
	"github.com/custodia-labs/pdfwords/internal/logger"
)

// Ensure ExtractionService implements the interface.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// ExtractionService runs classify, extract and aggregate over every
// enumerated document, one at a time, and serialises the records.
type ExtractionService struct {
	source     driven.DocumentSource
	classifier *Classifier
	extractor  *Extractor
	aggregator *Aggregator
	store      driven.RecordStore
	writer     driven.RecordWriter

	failFast bool
	now      func() time.Time
	newID    func() string
}

// ExtractionOption configures an ExtractionService.
type ExtractionOption func(*ExtractionService)

// WithFailFast stops the run at the first document failure.
func WithFailFast(failFast bool) ExtractionOption {
	return func(s *ExtractionService) {
		s.failFast = failFast
	}
}

// WithClock overrides the time source used for the run report.
func WithClock(now func() time.Time) ExtractionOption {
	return func(s *ExtractionService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDFunc overrides the generator for run and record IDs.
func WithIDFunc(newID func() string) ExtractionOption {
	return func(s *ExtractionService) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewExtractionService creates a new extraction service.
// The rasterizer and OCR engine may be nil when only digital documents are
// expected; scanned documents then fail with ErrExtraction.
func NewExtractionService(
	source driven.DocumentSource,
	reader driven.TextLayerReader,
	rasterizer driven.Rasterizer,
	ocr driven.OCREngine,
	tokenizer driven.Tokenizer,
	pipeline driven.TokenPipeline,
	store driven.RecordStore,
	writer driven.RecordWriter,
	opts ...ExtractionOption,
) *ExtractionService {
	s := &ExtractionService{
		source:     source,
		classifier: NewClassifier(reader),
		extractor:  NewExtractor(reader, rasterizer, ocr),
		aggregator: NewAggregator(tokenizer, pipeline),
		store:      store,
		writer:     writer,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.aggregator.newID = s.newID
	return s
}

// Run processes every document and writes the output file.
//
// A failing document is recorded in the report and skipped unless fail-fast
// is set. Context cancellation, a missing external tool, enumeration errors
// and output errors stop the run; the partial report is still returned.
func (s *ExtractionService) Run(ctx context.Context, fn driving.ProgressFunc) (*domain.RunReport, error) {
	if fn == nil {
		fn = func(domain.Progress) {}
	}

	s.store.Clear()

	report := &domain.RunReport{
		RunID:      s.newID(),
		StartedAt:  s.now(),
		OutputPath: s.writer.Path(),
	}

	listing, err := s.source.List(ctx)
	if err != nil {
		return report, fmt.Errorf("list documents: %w", err)
	}
	report.SkippedCategories = listing.MissingCategories
	for _, category := range listing.MissingCategories {
		logger.Debug("Category folder %q not found, skipping", category)
	}

	logger.Section(fmt.Sprintf("Extracting %d documents", len(listing.Documents)))

	for i, doc := range listing.Documents {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		logger.Info("[%d/%d] %s/%s", i+1, len(listing.Documents), doc.Category, doc.FileName())
		event := domain.Progress{Index: i + 1, Total: len(listing.Documents), Document: doc}
		fn(event)

		result, err := s.process(ctx, doc)
		if err != nil {
			return report, err
		}
		report.Results = append(report.Results, result)
		event.Result = &result
		fn(event)

		if !result.OK() {
			logger.Warn("Skipping %s", result.Err)
			if s.failFast {
				return report, result.Err
			}
			continue
		}

		if err := s.store.Append(ctx, *result.Record); err != nil {
			return report, fmt.Errorf("store record: %w", err)
		}
	}

	records, err := s.store.List(ctx)
	if err != nil {
		return report, fmt.Errorf("list records: %w", err)
	}
	if err := s.writer.Write(ctx, records); err != nil {
		return report, fmt.Errorf("write output: %w", err)
	}

	report.FinishedAt = s.now()
	logger.Debug("Run %s wrote %d records in %s", report.RunID, len(records), report.Duration())
	return report, nil
}

// process runs the three stages for one document. The returned error is
// non-nil only for failures that must stop the whole run.
func (s *ExtractionService) process(ctx context.Context, doc domain.Document) (domain.DocumentResult, error) {
	kind, err := s.classifier.Classify(ctx, doc.Path)
	if err != nil {
		return failure(doc, domain.StageClassify, err)
	}
	logger.Debug("  classified as %s", kind)

	ext, err := s.extractor.Extract(ctx, doc.Path, kind)
	if err != nil {
		return failure(doc, domain.StageExtract, err)
	}

	rec, err := s.aggregator.Aggregate(ctx, doc, ext)
	if err != nil {
		return failure(doc, domain.StageAggregate, err)
	}
	logger.Debug("  %d pages, %d unique words", rec.Pages, rec.WordCount())
	return domain.Succeeded(doc, rec), nil
}

// ExtractFile runs the three stages on the PDF at path outside of a batch.
// Nothing is written to the store or the output file.
func (s *ExtractionService) ExtractFile(ctx context.Context, path string) (domain.ExtractedRecord, error) {
	doc := domain.NewDocument(path, filepath.Base(filepath.Dir(path)))

	result, err := s.process(ctx, doc)
	if err != nil {
		return domain.ExtractedRecord{}, err
	}
	if !result.OK() {
		return domain.ExtractedRecord{}, result.Err
	}
	return *result.Record, nil
}

// Classify reports whether the PDF at path is digital or scanned.
func (s *ExtractionService) Classify(ctx context.Context, path string) (domain.DocumentKind, error) {
	return s.classifier.Classify(ctx, path)
}

func failure(doc domain.Document, stage domain.Stage, err error) (domain.DocumentResult, error) {
	if isFatal(err) {
		return domain.DocumentResult{}, err
	}
	return domain.Failed(doc, stage, err), nil
}

// isFatal reports errors that no other document could avoid either.
func isFatal(err error) bool {
	return isContextErr(err) || errors.Is(err, domain.ErrToolNotFound)
}
