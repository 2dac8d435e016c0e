// Package pdf extracts text from legal PDF files using external
// recognition tooling.
//
// Two strategies are supported. The OCR strategy runs ocrmypdf over the
// input to add a text layer, then reads the embedded text back. The image
// strategy rasterises every page with pdftoppm and recognises each page
// image with tesseract, which helps with scans whose existing text layer
// confuses ocrmypdf.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/veredicto-labs/autos/internal/core/domain"
	"github.com/veredicto-labs/autos/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// DefaultLanguage is the tesseract language code used for recognition.
const DefaultLanguage = "por"

// Sentinel errors for missing external tools.
var (
	ErrOCRToolNotFound    = errors.New("ocrmypdf not found in PATH")
	ErrRasterToolNotFound = errors.New("pdftoppm not found in PATH")
	ErrTessToolNotFound   = errors.New("tesseract not found in PATH")
)

// CommandRunner abstracts command execution for testing.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands using os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return output, nil
}

// Config holds extractor configuration.
type Config struct {
	// Language is the tesseract language code (default: por).
	Language string
}

// Extractor extracts text from PDF files.
type Extractor struct {
	runner   CommandRunner
	language string

	// readEmbedded is swappable in tests, where no real PDF exists.
	readEmbedded func(path string) (string, error)
}

// New creates a new PDF extractor using the real command runner.
func New(cfg Config) *Extractor {
	return NewWithRunner(cfg, execRunner{})
}

// NewWithRunner creates a new PDF extractor with a custom command runner.
func NewWithRunner(cfg Config, runner CommandRunner) *Extractor {
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	return &Extractor{
		runner:       runner,
		language:     cfg.Language,
		readEmbedded: readEmbeddedText,
	}
}

// Extract returns the full text of the PDF at pdfPath.
func (e *Extractor) Extract(ctx context.Context, pdfPath string, method domain.ExtractionMethod) (string, error) {
	if !method.Valid() {
		return "", fmt.Errorf("%w: unknown extraction method %q", domain.ErrInvalidInput, method)
	}
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	var text string
	var err error
	switch method {
	case domain.MethodOCR:
		text, err = e.extractOCR(ctx, pdfPath)
	case domain.MethodImage:
		text, err = e.extractImage(ctx, pdfPath)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	return text, nil
}

// extractOCR runs ocrmypdf to add a text layer, then reads the embedded
// text back from the output file.
func (e *Extractor) extractOCR(ctx context.Context, pdfPath string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "autos-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outPath := filepath.Join(tmpDir, "ocr.pdf")
	_, err = e.runner.Run(ctx, "ocrmypdf",
		"--force-ocr",
		"-l", e.language,
		pdfPath,
		outPath,
	)
	if err != nil {
		return "", fmt.Errorf("ocrmypdf failed: %w", err)
	}

	text, err := e.readEmbedded(outPath)
	if err != nil {
		return "", fmt.Errorf("read recognised text: %w", err)
	}
	return text, nil
}

// extractImage rasterises each page and recognises the page images with
// tesseract, page order preserved.
func (e *Extractor) extractImage(ctx context.Context, pdfPath string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "autos-img-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	_, err = e.runner.Run(ctx, "pdftoppm",
		"-r", "300",
		"-png",
		pdfPath,
		prefix,
	)
	if err != nil {
		return "", fmt.Errorf("pdftoppm failed: %w", err)
	}

	pages, err := filepath.Glob(prefix + "*.png")
	if err != nil {
		return "", fmt.Errorf("list page images: %w", err)
	}
	if len(pages) == 0 {
		return "", errors.New("pdftoppm produced no page images")
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(pages)

	var builder strings.Builder
	for i, page := range pages {
		output, err := e.runner.Run(ctx, "tesseract",
			page,
			"stdout",
			"-l", e.language,
		)
		if err != nil {
			return "", fmt.Errorf("tesseract failed on page %d: %w", i+1, err)
		}
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.Write(output)
	}

	return builder.String(), nil
}

// readEmbeddedText reads the text layer of a PDF file page by page.
func readEmbeddedText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		if i > 1 {
			builder.WriteString("\n")
		}
		builder.WriteString(text)
	}

	return builder.String(), nil
}

// CheckAvailable verifies the external tools for the given method are in PATH.
func CheckAvailable(method domain.ExtractionMethod) error {
	switch method {
	case domain.MethodOCR:
		if _, err := exec.LookPath("ocrmypdf"); err != nil {
			return ErrOCRToolNotFound
		}
	case domain.MethodImage:
		if _, err := exec.LookPath("pdftoppm"); err != nil {
			return ErrRasterToolNotFound
		}
		if _, err := exec.LookPath("tesseract"); err != nil {
			return ErrTessToolNotFound
		}
	}
	return nil
}

// InstallInstructions returns help text for installing the external tools.
func InstallInstructions() string {
	return `PDF extraction requires external tools:

  ocrmypdf (OCR strategy):
    macOS:  brew install ocrmypdf
    Ubuntu: apt install ocrmypdf

  pdftoppm + tesseract (image strategy):
    macOS:  brew install poppler tesseract tesseract-lang
    Ubuntu: apt install poppler-utils tesseract-ocr tesseract-ocr-por`
}
