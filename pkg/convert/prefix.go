package convert

import (
	"path/filepath"
	"strings"
)

const prefixSep = '-'

// fallbackPrefix is used when neither the user prefix nor the input
// file name yields any usable characters.
const fallbackPrefix = "rendered"

// sanitizePrefix keeps ASCII alphanumerics, '-', '_' and '.'; every run
// of other characters collapses to a single '-'. Leading and trailing
// separators are trimmed, which can expose adjacent separators at the
// new boundaries, so runs of '-' are collapsed in a second pass.
func sanitizePrefix(s string) string {
	var raw strings.Builder
	raw.Grow(len(s))
	lastSep := false
	for _, c := range s {
		keep := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == '-' || c == '_' || c == '.'
		if keep {
			raw.WriteRune(c)
			lastSep = false
		} else if !lastSep {
			raw.WriteByte(prefixSep)
			lastSep = true
		}
	}

	trimmed := strings.Trim(raw.String(), string(prefixSep))
	if trimmed == "" {
		return ""
	}

	var collapsed strings.Builder
	collapsed.Grow(len(trimmed))
	prevSep := false
	for _, c := range trimmed {
		if c == prefixSep {
			if !prevSep {
				collapsed.WriteByte(prefixSep)
				prevSep = true
			}
		} else {
			collapsed.WriteRune(c)
			prevSep = false
		}
	}
	return collapsed.String()
}

// fileStem returns the file name of path without its final extension,
// or "" when the path has no usable file name.
func fileStem(path string) string {
	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ResolvePrefix resolves the filename prefix used for output files.
//
// When userPrefix is non-nil it is sanitized and used, otherwise the
// prefix is inferred from the input path's file stem. An empty result
// falls back to "rendered". The returned prefix always ends with
// exactly one trailing '-'; the sanitizer never leaves one behind, so
// the suffix check is idempotent.
func ResolvePrefix(userPrefix *string, inputPath string) string {
	var base string
	if userPrefix != nil {
		base = sanitizePrefix(*userPrefix)
	} else {
		stem := fileStem(inputPath)
		if stem == "" {
			stem = fallbackPrefix
		}
		base = sanitizePrefix(stem)
	}

	if base == "" {
		base = fallbackPrefix
	}
	if !strings.HasSuffix(base, string(prefixSep)) {
		base += string(prefixSep)
	}
	return base
}
