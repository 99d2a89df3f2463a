// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The extraction pipeline is split into three stages that the
// ExtractionService runs per document: Classifier, Extractor and
// Aggregator. Each stage is usable on its own.
package services
