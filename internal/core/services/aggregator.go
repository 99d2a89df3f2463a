package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// Aggregator turns normalised document text into an ExtractedRecord.
type Aggregator struct {
	tokenizer driven.Tokenizer
	pipeline  driven.TokenPipeline
	newID     func() string
}

// NewAggregator creates an aggregator. The pipeline applies the token
// filters (alphabetic, dedupe and any configured extras).
func NewAggregator(tokenizer driven.Tokenizer, pipeline driven.TokenPipeline) *Aggregator {
	return &Aggregator{
		tokenizer: tokenizer,
		pipeline:  pipeline,
		newID:     uuid.NewString,
	}
}

// Aggregate tokenizes ext.Text, filters the tokens and builds the record for doc.
func (a *Aggregator) Aggregate(ctx context.Context, doc domain.Document, ext *Extraction) (domain.ExtractedRecord, error) {
	tokens := a.tokenizer.Tokenize(ext.Text)

	words, err := a.pipeline.Process(ctx, tokens)
	if err != nil {
		return domain.ExtractedRecord{}, err
	}

	return domain.NewExtractedRecord(a.newID(), doc, ext.Kind, ext.Pages, words), nil
}
