package main

import (
	"github.com/custodia-labs/pdfwords/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pdfwords/internal/adapters/driven/ocr/tesseract"
	"github.com/custodia-labs/pdfwords/internal/adapters/driven/output"
	"github.com/custodia-labs/pdfwords/internal/adapters/driven/pdf"
	"github.com/custodia-labs/pdfwords/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pdfwords/internal/adapters/driven/tokenizer"
	"github.com/custodia-labs/pdfwords/internal/connectors/filesystem"
	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driving"
	"github.com/custodia-labs/pdfwords/internal/core/services"
	"github.com/custodia-labs/pdfwords/internal/postprocessors"
)

func newConfigService(configDir string) (driving.ConfigService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	return services.NewConfigService(store), nil
}

func newRasterizer(s domain.Settings) *pdf.Rasterizer {
	return pdf.NewRasterizer(
		pdf.WithBinary(s.Raster.PDFToPPMPath),
		pdf.WithDPI(s.OCR.DPI),
	)
}

func newOCREngine(s domain.Settings) *tesseract.Engine {
	return tesseract.New(
		tesseract.WithLanguages(s.OCR.Languages...),
		tesseract.WithTessdataPrefix(s.OCR.TessdataPrefix),
	)
}

func newExtractionService(s domain.Settings) (driving.ExtractionService, error) {
	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	pipeline, err := postprocessors.BuildPipeline(registry, s.Tokens)
	if err != nil {
		return nil, err
	}

	writer, err := output.New(s.Output)
	if err != nil {
		return nil, err
	}

	source := filesystem.New(s.Input.Root, s.Input.Categories,
		filesystem.WithIgnoreCaseExt(s.Input.IgnoreCaseExt))

	return services.NewExtractionService(
		source,
		pdf.NewTextLayer(),
		newRasterizer(s),
		newOCREngine(s),
		tokenizer.New(),
		pipeline,
		memory.NewRecordStore(),
		writer,
		services.WithFailFast(s.FailFast),
	), nil
}

func newDiagnosticsService(s domain.Settings) driving.DiagnosticsService {
	return services.NewDiagnosticsService(newRasterizer(s), newOCREngine(s))
}
