package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// DocumentExtractor implements TextExtractor for PDF and DOCX documents.
type DocumentExtractor struct {
	logger *slog.Logger
}

var _ TextExtractor = (*DocumentExtractor)(nil)

// NewDocumentExtractor creates a new DocumentExtractor.
func NewDocumentExtractor(logger *slog.Logger) *DocumentExtractor {
	return &DocumentExtractor{
		logger: logger.With("component", "document_extractor"),
	}
}

// ExtractText dispatches on the normalized file extension and returns the
// document's text content, trimmed of surrounding whitespace.
func (e *DocumentExtractor) ExtractText(ctx context.Context, filePath string, ext string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}

	var (
		text string
		err  error
	)

	switch NormalizeExt(ext) {
	case "pdf":
		text, err = e.extractPDF(filePath)
	case "docx":
		text, err = e.extractDOCX(filePath)
	default:
		return "", fmt.Errorf("%w: %q (only .pdf and .docx are supported)", ErrUnsupportedType, ext)
	}

	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	e.logger.Debug("extracted document text",
		"file_path", filePath,
		"text_length", len(text))
	return text, nil
}

// extractPDF concatenates the plain text of every page.
func (e *DocumentExtractor) extractPDF(filePath string) (string, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			e.logger.Warn("failed to close pdf file", "file_path", filePath, "error", closeErr)
		}
	}()

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plainText); err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	return buf.String(), nil
}

// extractDOCX joins the document body paragraphs with newlines.
func (e *DocumentExtractor) extractDOCX(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			e.logger.Warn("failed to close docx file", "file_path", filePath, "error", closeErr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		if paragraph, ok := item.(*docx.Paragraph); ok {
			sb.WriteString(paragraph.String())
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
