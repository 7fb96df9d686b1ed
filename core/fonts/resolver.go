// Package fonts resolves a Unicode-capable TrueType font for PDF output.
// CJK text cannot be rendered with the built-in core fonts, so the resolver
// probes a fixed table of well-known CJK font files across a fixed list of
// search directories and falls back to Helvetica when nothing usable exists.
package fonts

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/jung-kurt/gofpdf"
)

// FallbackFamily is the built-in core font used when no candidate resolves.
const FallbackFamily = "Helvetica"

// Font identifies a resolved font. Path is empty for the core fallback;
// otherwise it points at the TrueType file to register on each document.
type Font struct {
	Family string
	Path   string
}

// Core reports whether the font is a built-in core family rather than a
// file-backed one.
func (f Font) Core() bool {
	return f.Path == ""
}

// Candidate pairs a font family name with the file it ships in.
type Candidate struct {
	Family string
	File   string
}

// candidates are probed in order; the first file that exists and registers
// cleanly wins. The table covers a few well-known CJK font packages.
var candidates = []Candidate{
	{"MicrosoftJhengHei", "msjh.ttc"},
	{"MicrosoftJhengHei", "msjh.ttf"},
	{"NotoSansCJK", "NotoSansCJK-Regular.ttc"},
	{"NotoSansTC", "NotoSansTC-Regular.otf"},
}

// searchDirs returns the fixed probe locations: the platform font directory,
// a fonts subdirectory of the working directory, and the working directory.
func searchDirs() []string {
	var system string
	switch runtime.GOOS {
	case "windows":
		system = `C:\Windows\Fonts`
	case "darwin":
		system = "/Library/Fonts"
	default:
		system = "/usr/share/fonts"
	}
	return []string{system, "fonts", "."}
}

// Resolver probes for a usable Unicode font exactly once and caches the
// result. Construct one per process and pass the resolved Font into style
// construction; registration on output documents happens per render.
type Resolver struct {
	// Candidates and SearchDirs are fixed at construction; NewResolver
	// installs the built-in tables.
	Candidates []Candidate
	SearchDirs []string

	resolved bool
	font     Font
}

// NewResolver creates a Resolver with the built-in candidate and search-path
// tables.
func NewResolver() *Resolver {
	return &Resolver{Candidates: candidates, SearchDirs: searchDirs()}
}

// Resolve returns the first candidate font that exists and registers
// cleanly, or the Helvetica fallback when none does. Absence of a match is
// the designed fallback path, not an error; per-candidate failures are
// swallowed. The result is cached, so re-resolving is cheap.
func (r *Resolver) Resolve() Font {
	if r.resolved {
		return r.font
	}
	r.font = r.probe()
	r.resolved = true
	return r.font
}

func (r *Resolver) probe() Font {
	for _, c := range r.Candidates {
		for _, dir := range r.SearchDirs {
			path := filepath.Join(dir, c.File)
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			if !registers(c.Family, path) {
				continue
			}
			return Font{Family: c.Family, Path: path}
		}
	}
	return Font{Family: FallbackFamily}
}

// registers attempts a trial registration on a scratch document. gofpdf
// records registration failures (unreadable or unsupported font files, e.g.
// TTC collections) on the document instead of returning them, so the scratch
// document's error state is the probe result. Its font parser can also panic
// on corrupt files; that counts as a failed probe too.
func registers(family, path string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetFontLocation(filepath.Dir(path))
	pdf.AddUTF8Font(family, "", filepath.Base(path))
	return pdf.Error() == nil
}
