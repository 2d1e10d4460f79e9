// Package strip removes Doxygen documentation comments from source text.
//
// A documentation block is the shortest span that starts with the literal
// "/**" and ends at the next "*/", newlines included. Everything else passes
// through byte for byte: line comments, plain /* ... */ blocks, string
// literals that happen to contain the markers, even bytes that are not valid
// UTF-8. Because the markers are plain ASCII, matching is independent of the
// file's text encoding.
package strip

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"
)

// docPattern matches one documentation block: "/**" up to the nearest
// following "*/". A plain "/*" never matches, and an opener with no closer
// matches nothing at all.
var docPattern = regexp.MustCompile(`/\*\*[\s\S]*?\*/`)

// openMarker starts a documentation block.
var openMarker = []byte("/**")

// Result summarizes a single strip run.
type Result struct {
	// Blocks is the number of documentation blocks removed.
	Blocks int
	// BytesIn and BytesOut are the sizes of the source before and after.
	BytesIn  int
	BytesOut int
}

// Bytes returns src with every documentation block removed. When src contains
// no block the input slice is returned unchanged.
func Bytes(src []byte) []byte {
	return splice(src, docPattern.FindAllIndex(src, -1))
}

// Stripper removes documentation blocks from files. The zero value is not
// usable; construct one with New.
type Stripper struct {
	log *zap.Logger
}

// New creates a Stripper that reports diagnostics through log. A nil log
// disables diagnostics.
func New(log *zap.Logger) *Stripper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Stripper{log: log}
}

// File reads inputPath, removes every documentation block, and writes the
// result to outputPath, replacing any previous content. The write goes
// through a temporary file in the target directory followed by a rename, so
// a failed run never leaves a half-written output behind. The input file is
// only modified when it is also the output.
func (s *Stripper) File(inputPath, outputPath string) (Result, error) {
	src, err := os.ReadFile(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	matches := docPattern.FindAllIndex(src, -1)
	out := splice(src, matches)
	res := Result{Blocks: len(matches), BytesIn: len(src), BytesOut: len(out)}

	// An opener past the last match has no closer anywhere after it,
	// otherwise it would have matched. Flag it, but keep the bytes.
	tailStart := 0
	if len(matches) > 0 {
		tailStart = matches[len(matches)-1][1]
	}
	if i := bytes.Index(src[tailStart:], openMarker); i >= 0 {
		s.log.Warn("unterminated /** left untouched",
			zap.String("input", inputPath),
			zap.Int("offset", tailStart+i),
		)
	}

	if err := atomic.WriteFile(outputPath, bytes.NewReader(out)); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", outputPath, err)
	}

	s.log.Debug("removed documentation blocks",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int("blocks", res.Blocks),
		zap.Int("bytes_in", res.BytesIn),
		zap.Int("bytes_out", res.BytesOut),
	)
	return res, nil
}

// splice drops every matched span and joins the gaps between them in order.
// Matches must be non-overlapping and sorted, as returned by FindAllIndex.
func splice(src []byte, matches [][]int) []byte {
	if len(matches) == 0 {
		return src
	}
	out := make([]byte, 0, len(src))
	last := 0
	for _, m := range matches {
		out = append(out, src[last:m[0]]...)
		last = m[1]
	}
	return append(out, src[last:]...)
}
