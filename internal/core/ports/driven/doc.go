// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentSource: Enumerates the PDFs under the category folders
//   - TextLayerReader: Reads the native text layer page by page
//   - Rasterizer: Renders pages to images for OCR
//   - OCREngine: Recognises text in a page image
//   - Tokenizer: Splits text at word boundaries
//   - TokenPipeline: Filters and deduplicates tokens
//   - RecordStore: Holds records for the lifetime of a run
//   - RecordWriter: Serialises records to the output table
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - ToolProbe: Reports whether an external program is installed
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or postprocessor package
package driven
