package convert

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// baseDPI is the resolution MuPDF renders at for scale 1.0, so
// rendering at baseDPI*scale applies the scale factor on both axes.
const baseDPI = 72

// PDFDocument is a parsed PDF exclusively owned by one conversion run.
type PDFDocument struct {
	doc *fitz.Document
}

var _ Document = (*PDFDocument)(nil)

// OpenDocument reads and parses the input file. The bytes must sniff
// as PDF before any parsing is attempted, and the document must pass a
// structural pre-flight before it is handed to the renderer.
func OpenDocument(path string) (*PDFDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: ErrFileSystem, Message: "failed to read input file", Err: err}
	}

	if !mimetype.Detect(data).Is("application/pdf") {
		return nil, &Error{Kind: ErrFileType, Message: "input file is not a PDF"}
	}

	if _, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration()); err != nil {
		return nil, &Error{Kind: ErrPDF, Message: "failed to read PDF", Err: err}
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, &Error{Kind: ErrPDF, Message: "failed to open PDF for rendering", Err: err}
	}

	return &PDFDocument{doc: doc}, nil
}

func (d *PDFDocument) PageCount() int {
	return d.doc.NumPage()
}

func (d *PDFDocument) RenderPNG(page int, scale float64) ([]byte, error) {
	img, err := d.doc.ImageDPI(page, baseDPI*scale)
	if err != nil {
		return nil, &Error{Kind: ErrPDF, Message: fmt.Sprintf("failed to render page %d", page+1), Err: err}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &Error{Kind: ErrPDF, Message: fmt.Sprintf("failed to encode page %d as PNG", page+1), Err: err}
	}
	return buf.Bytes(), nil
}

func (d *PDFDocument) RenderSVG(page int) (string, error) {
	markup, err := d.doc.SVG(page)
	if err != nil {
		return "", &Error{Kind: ErrPDF, Message: fmt.Sprintf("failed to render page %d as SVG", page+1), Err: err}
	}
	return markup, nil
}

func (d *PDFDocument) Close() error {
	return d.doc.Close()
}
