// SPDX-License-Identifier: MIT

package mtx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/spmvbench/coo"
)

const (
	opRead     = "Read"
	opReadFile = "ReadFile"

	bannerPrefix = "%%MatrixMarket"

	// maxPrealloc bounds the store capacity reserved from the size line;
	// entries beyond it grow the store as they are read.
	maxPrealloc = 1 << 20
	fileExt      = ".mtx"
)

// Field values accepted in the banner.
const (
	FieldReal    = "real"
	FieldInteger = "integer"
	FieldPattern = "pattern"
)

// Header describes a parsed file: banner qualifiers plus the size line.
type Header struct {
	Object   string // always "matrix"
	Format   string // always "coordinate"
	Field    string // real | integer | pattern
	Symmetry string // always "general"

	Rows, Cols, NNZ int
}

// defaultHeader is assumed when the file has no banner.
func defaultHeader() Header {
	return Header{Object: "matrix", Format: "coordinate", Field: FieldReal, Symmetry: "general"}
}

// lineReader yields non-empty, non-comment lines with their 1-based number.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &lineReader{sc: sc}
}

// next returns the next data line; ok is false at EOF. Banner lines are
// returned to the caller only via banner, which must be called first.
func (lr *lineReader) next() (fields []string, ok bool, err error) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text == "" || text[0] == '%' {
			continue
		}

		return strings.Fields(text), true, nil
	}

	return nil, false, lr.sc.Err()
}

// banner consumes the first line when it is a banner and parses it. Any
// other first line is left in place by reporting it as data.
func (lr *lineReader) banner() (h Header, pending []string, err error) {
	h = defaultHeader()
	if !lr.sc.Scan() {
		return h, nil, lr.sc.Err()
	}
	lr.line++
	text := strings.TrimSpace(lr.sc.Text())
	if !strings.HasPrefix(text, bannerPrefix) {
		if text == "" || text[0] == '%' {
			return h, nil, nil
		}
		return h, strings.Fields(text), nil
	}

	parts := strings.Fields(strings.ToLower(text[len(bannerPrefix):]))
	if len(parts) != 4 {
		return h, nil, fmt.Errorf("line %d: banner has %d qualifiers, want 4: %w", lr.line, len(parts), ErrMalformed)
	}
	h.Object, h.Format, h.Field, h.Symmetry = parts[0], parts[1], parts[2], parts[3]
	if err = checkHeader(h); err != nil {
		return h, nil, fmt.Errorf("line %d: %w", lr.line, err)
	}

	return h, nil, nil
}

// checkHeader accepts only what this reader can represent faithfully.
func checkHeader(h Header) error {
	if h.Object != "matrix" {
		return fmt.Errorf("object %q: %w", h.Object, ErrUnsupported)
	}
	if h.Format != "coordinate" {
		return fmt.Errorf("format %q: %w", h.Format, ErrUnsupported)
	}
	switch h.Field {
	case FieldReal, FieldInteger, FieldPattern:
	default:
		return fmt.Errorf("field %q: %w", h.Field, ErrUnsupported)
	}
	if h.Symmetry != "general" {
		return fmt.Errorf("symmetry %q: %w", h.Symmetry, ErrUnsupported)
	}

	return nil
}

// Read parses a coordinate Matrix-Market stream.
// Implementation:
//   - Stage 1: optional banner; qualifiers validated (ErrUnsupported).
//   - Stage 2: size line "rows cols nnz" (positive rows/cols, nnz >= 0).
//   - Stage 3: exactly nnz entry lines "i j [v]", 1-based, appended 0-based.
//
// Extra lines after the nnz-th entry are ignored.
//
// Errors: ErrMalformed or ErrUnsupported, wrapped with the offending line.
// Complexity: O(nnz) time and space.
func Read(r io.Reader) (*Header, *coo.Store, error) {
	lr := newLineReader(r)
	h, fields, err := lr.banner()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opRead, err)
	}

	if fields == nil {
		var ok bool
		if fields, ok, err = lr.next(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opRead, err)
		} else if !ok {
			return nil, nil, fmt.Errorf("%s: missing size line: %w", opRead, ErrMalformed)
		}
	}
	if err = parseSize(fields, &h); err != nil {
		return nil, nil, fmt.Errorf("%s: line %d: %w", opRead, lr.line, err)
	}

	// Declared nnz only sizes the capacity hint; short input is ErrMalformed.
	s := coo.NewStore(h.Rows, h.Cols, min(h.NNZ, maxPrealloc))
	want := 3
	if h.Field == FieldPattern {
		want = 2
	}

	var (
		k, row, col int
		val         float64
		ok          bool
	)
	for k = 0; k < h.NNZ; k++ {
		if fields, ok, err = lr.next(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opRead, err)
		} else if !ok {
			return nil, nil, fmt.Errorf("%s: got %d of %d entries: %w", opRead, k, h.NNZ, ErrMalformed)
		}
		if len(fields) < want {
			return nil, nil, fmt.Errorf("%s: line %d: %d fields, want %d: %w", opRead, lr.line, len(fields), want, ErrMalformed)
		}
		if row, err = parseIndex(fields[0], h.Rows); err != nil {
			return nil, nil, fmt.Errorf("%s: line %d: row: %w", opRead, lr.line, err)
		}
		if col, err = parseIndex(fields[1], h.Cols); err != nil {
			return nil, nil, fmt.Errorf("%s: line %d: col: %w", opRead, lr.line, err)
		}
		val = 1
		if want == 3 {
			if val, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, nil, fmt.Errorf("%s: line %d: value %q: %w", opRead, lr.line, fields[2], ErrMalformed)
			}
		}
		s.Append(row, col, val)
	}

	return &h, s, nil
}

// parseSize fills the dimensions of h from a size line.
func parseSize(fields []string, h *Header) error {
	if len(fields) != 3 {
		return fmt.Errorf("size line has %d fields, want 3: %w", len(fields), ErrMalformed)
	}
	var dims [3]int
	var err error
	for i, f := range fields {
		if dims[i], err = strconv.Atoi(f); err != nil {
			return fmt.Errorf("size %q: %w", f, ErrMalformed)
		}
	}
	if dims[0] <= 0 || dims[1] <= 0 || dims[2] < 0 {
		return fmt.Errorf("size %dx%d nnz=%d: %w", dims[0], dims[1], dims[2], ErrMalformed)
	}
	h.Rows, h.Cols, h.NNZ = dims[0], dims[1], dims[2]

	return nil
}

// parseIndex converts a 1-based index in [1, n] to 0-based.
func parseIndex(f string, n int) (int, error) {
	i, err := strconv.Atoi(f)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", f, ErrMalformed)
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("%d not in [1,%d]: %w", i, n, ErrMalformed)
	}

	return i - 1, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) (*Header, *coo.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opReadFile, err)
	}
	defer f.Close()

	h, s, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", opReadFile, path, err)
	}

	return h, s, nil
}

// MatrixName returns the base name of path without a trailing ".mtx",
// e.g. "/data/bcsstk17/bcsstk17.mtx" -> "bcsstk17". A file named exactly
// ".mtx" keeps its name.
func MatrixName(path string) string {
	name := filepath.Base(strings.ReplaceAll(path, `\`, "/"))
	if len(name) > len(fileExt) && strings.HasSuffix(name, fileExt) {
		name = name[:len(name)-len(fileExt)]
	}

	return name
}
