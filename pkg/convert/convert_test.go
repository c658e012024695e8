package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type fakeDocument struct {
	pages     int
	svg       string
	pngData   []byte
	pngErr    error
	svgErr    error
	pngPages  []int
	pngScales []float64
}

func (d *fakeDocument) PageCount() int { return d.pages }

func (d *fakeDocument) RenderPNG(page int, scale float64) ([]byte, error) {
	if d.pngErr != nil {
		return nil, d.pngErr
	}
	d.pngPages = append(d.pngPages, page)
	d.pngScales = append(d.pngScales, scale)
	return d.pngData, nil
}

func (d *fakeDocument) RenderSVG(page int) (string, error) {
	if d.svgErr != nil {
		return "", d.svgErr
	}
	return d.svg, nil
}

func testConverter(doc Document) *Converter {
	return NewConverter(doc, zap.NewNop().Sugar())
}

func TestConvertAllPages(t *testing.T) {
	dir := t.TempDir()
	doc := &fakeDocument{pages: 3, pngData: []byte("png")}

	written, err := testConverter(doc).Convert(Options{
		Format:    FormatPNG,
		OutputDir: dir,
		Scale:     1.0,
		Prefix:    "doc-",
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if written != 3 {
		t.Errorf("Convert() wrote %d files, want 3", written)
	}

	for _, name := range []string{"doc-1.png", "doc-2.png", "doc-3.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected output file %s: %v", name, err)
		}
	}
}

func TestConvertSelectedPage(t *testing.T) {
	dir := t.TempDir()
	doc := &fakeDocument{pages: 3, pngData: []byte("png")}

	written, err := testConverter(doc).Convert(Options{
		Format:    FormatPNG,
		OutputDir: dir,
		Scale:     1.0,
		Prefix:    "doc-",
		Pages:     Selection{1: {}},
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if written != 1 {
		t.Errorf("Convert() wrote %d files, want 1", written)
	}

	if _, err := os.Stat(filepath.Join(dir, "doc-2.png")); err != nil {
		t.Errorf("expected output file doc-2.png: %v", err)
	}
	for _, name := range []string{"doc-1.png", "doc-3.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("unselected page file %s should not exist", name)
		}
	}
}

func TestConvertForwardsScaleUnchanged(t *testing.T) {
	doc := &fakeDocument{pages: 2, pngData: []byte("png")}

	_, err := testConverter(doc).Convert(Options{
		Format:    FormatPNG,
		OutputDir: t.TempDir(),
		Scale:     2.5,
		Prefix:    "doc-",
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(doc.pngScales) != 2 {
		t.Fatalf("renderer called %d times, want 2", len(doc.pngScales))
	}
	for _, scale := range doc.pngScales {
		if scale != 2.5 {
			t.Errorf("renderer received scale %v, want 2.5 unchanged", scale)
		}
	}
}

func TestConvertSVGRescalesMarkup(t *testing.T) {
	dir := t.TempDir()
	doc := &fakeDocument{pages: 1, svg: `<svg width="100" height="50"></svg>`}

	written, err := testConverter(doc).Convert(Options{
		Format:    FormatSVG,
		OutputDir: dir,
		Scale:     2.0,
		Prefix:    "page-",
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if written != 1 {
		t.Errorf("Convert() wrote %d files, want 1", written)
	}

	data, err := os.ReadFile(filepath.Join(dir, "page-1.svg"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, `width="200.000000"`) || !strings.Contains(got, `height="100.000000"`) {
		t.Errorf("output markup not rescaled: %q", got)
	}
}

func TestConvertSVGScaleOneUntouched(t *testing.T) {
	dir := t.TempDir()
	markup := `<svg width="100" height="50"></svg>`
	doc := &fakeDocument{pages: 1, svg: markup}

	if _, err := testConverter(doc).Convert(Options{
		Format:    FormatSVG,
		OutputDir: dir,
		Scale:     1.0,
		Prefix:    "page-",
	}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "page-1.svg"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != markup {
		t.Errorf("markup changed at scale 1.0: %q", string(data))
	}
}

func TestConvertWriteFailureAborts(t *testing.T) {
	// The directory does not exist, so the first write fails and no
	// later page is attempted.
	dir := filepath.Join(t.TempDir(), "missing")
	doc := &fakeDocument{pages: 3, pngData: []byte("png")}

	written, err := testConverter(doc).Convert(Options{
		Format:    FormatPNG,
		OutputDir: dir,
		Scale:     1.0,
		Prefix:    "doc-",
	})
	if err == nil {
		t.Fatal("Convert() expected write error")
	}
	if KindOf(err) != ErrFileSystem {
		t.Errorf("error kind = %q, want %q", KindOf(err), ErrFileSystem)
	}
	if written != 0 {
		t.Errorf("Convert() reported %d writes, want 0", written)
	}
	if len(doc.pngPages) != 1 {
		t.Errorf("renderer called %d times after failed write, want 1", len(doc.pngPages))
	}
}

func TestConvertRenderFailurePropagates(t *testing.T) {
	doc := &fakeDocument{
		pages:  2,
		pngErr: &Error{Kind: ErrPDF, Message: "failed to render page 1"},
	}

	_, err := testConverter(doc).Convert(Options{
		Format:    FormatPNG,
		OutputDir: t.TempDir(),
		Scale:     1.0,
		Prefix:    "doc-",
	})
	if err == nil {
		t.Fatal("Convert() expected render error")
	}
	if KindOf(err) != ErrPDF {
		t.Errorf("error kind = %q, want %q", KindOf(err), ErrPDF)
	}
}

func TestConvertRejectsInvalidOptions(t *testing.T) {
	doc := &fakeDocument{pages: 1, pngData: []byte("png")}

	tests := []struct {
		name string
		opts Options
	}{
		{"Zero scale", Options{Format: FormatPNG, OutputDir: ".", Scale: 0, Prefix: "doc-"}},
		{"Negative scale", Options{Format: FormatPNG, OutputDir: ".", Scale: -1, Prefix: "doc-"}},
		{"Unknown format", Options{Format: "gif", OutputDir: ".", Scale: 1, Prefix: "doc-"}},
		{"Missing prefix", Options{Format: FormatPNG, OutputDir: ".", Scale: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			written, err := testConverter(doc).Convert(tt.opts)
			if err == nil {
				t.Error("Convert() expected options validation error")
			}
			if written != 0 {
				t.Errorf("Convert() wrote %d files before validation, want 0", written)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"svg", FormatSVG, false},
		{"Svg", FormatSVG, false},
		{"gif", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
