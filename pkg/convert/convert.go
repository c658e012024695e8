package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Format of the produced output files.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case string(FormatPNG):
		return FormatPNG, nil
	case string(FormatSVG):
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("invalid output format %q, expected \"png\" or \"svg\"", s)
	}
}

// Document is the page source the converter walks. Pages are indexed
// 0-based; all user-facing numbering is 1-based.
type Document interface {
	PageCount() int
	// RenderPNG rasterizes one page with scale applied symmetrically
	// on both axes and returns the encoded PNG bytes.
	RenderPNG(page int, scale float64) ([]byte, error)
	// RenderSVG emits one page as SVG markup at scale 1.0.
	RenderSVG(page int) (string, error)
}

var validate = validator.New()

// Options describe one conversion run.
type Options struct {
	Format    Format  `validate:"required,oneof=png svg"`
	OutputDir string  `validate:"required"`
	Scale     float64 `validate:"gt=0"`
	// Prefix is prepended to the 1-based page number in every output
	// file name. Use ResolvePrefix to derive it.
	Prefix string `validate:"required"`
	// Pages filters which pages are converted. nil converts all.
	Pages Selection
}

// Validate checks the options before any file is written.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid conversion options: %w", err)
	}
	return nil
}

// Converter writes one output file per selected page of a document.
type Converter struct {
	doc    Document
	logger *zap.SugaredLogger
}

func NewConverter(doc Document, logger *zap.SugaredLogger) *Converter {
	return &Converter{doc: doc, logger: logger}
}

// Convert walks the document pages in ascending order, renders every
// selected page and writes it to {OutputDir}/{Prefix}{page}.{Format}.
// It returns the number of files written. The first render or write
// failure aborts the run; no remaining page is attempted.
func (c *Converter) Convert(opts Options) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	written := 0
	for i := 0; i < c.doc.PageCount(); i++ {
		if !opts.Pages.Contains(i) {
			continue
		}

		name := fmt.Sprintf("%s%d.%s", opts.Prefix, i+1, opts.Format)
		outPath := filepath.Join(opts.OutputDir, name)

		switch opts.Format {
		case FormatPNG:
			// The renderer receives the scale factor unchanged.
			data, err := c.doc.RenderPNG(i, opts.Scale)
			if err != nil {
				return written, err
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return written, &Error{Kind: ErrFileSystem, Message: "failed to write PNG", Err: err}
			}
		case FormatSVG:
			markup, err := c.doc.RenderSVG(i)
			if err != nil {
				return written, err
			}
			markup = RescaleSVG(markup, opts.Scale)
			if err := os.WriteFile(outPath, []byte(markup), 0644); err != nil {
				return written, &Error{Kind: ErrFileSystem, Message: "failed to write SVG", Err: err}
			}
		}

		written++
		c.logger.Debugf("wrote %s", outPath)
	}

	return written, nil
}
