// Package extractor provides the default metadata extraction used by the
// processing worker. Extraction is pluggable behind port.MetadataExtractor;
// this implementation derives what it can from the content type and, for
// PDFs, from the file itself.
package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"document-hub/internal/core/domain"
	"document-hub/internal/core/port"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const processingVersion = "1.0"

type Extractor struct {
	storage port.ObjectStorage
	logger  *slog.Logger
}

// New returns the default extractor
func New(storage port.ObjectStorage, logger *slog.Logger) *Extractor {
	return &Extractor{storage: storage, logger: logger}
}

// Extract derives structured metadata for the stored content. PDF page
// counts are read from the actual bytes; other supported types get a type
// tag only.
func (e *Extractor) Extract(ctx context.Context, storedName, contentType string) (*domain.DocumentMetadata, error) {
	meta := &domain.DocumentMetadata{
		CustomProperties: map[string]string{
			"processedBy":       "document-hub-worker",
			"processingVersion": processingVersion,
		},
	}

	switch {
	case contentType == "application/pdf":
		count, err := e.pdfPageCount(ctx, storedName)
		if err != nil {
			return nil, err
		}
		meta.PageCount = &count
		meta.CustomProperties["type"] = "pdf"

	case strings.HasPrefix(contentType, "image/"):
		meta.CustomProperties["type"] = "image"

	case strings.Contains(contentType, "word"):
		meta.CustomProperties["type"] = "document"
	}

	return meta, nil
}

func (e *Extractor) pdfPageCount(ctx context.Context, storedName string) (int, error) {
	rc, err := e.storage.Get(ctx, storedName)
	if err != nil {
		return 0, fmt.Errorf("fetch content %s: %w", storedName, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return 0, fmt.Errorf("read content %s: %w", storedName, err)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	count, err := api.PageCount(bytes.NewReader(content), conf)
	if err != nil {
		return 0, fmt.Errorf("count pdf pages in %s: %w", storedName, err)
	}
	return count, nil
}
