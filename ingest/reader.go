package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hupe1980/moogo/internal/fs"
	"github.com/hupe1980/moogo/pointset"
)

const defaultMaxLineSize = 1 << 20

type options struct {
	objectives  int
	maxLineSize int
	logger      *slog.Logger
	fs          fs.FileSystem
}

// Option configures Read and ReadFile.
type Option func(*options)

// WithObjectives requires every point to have exactly n objectives.
// A first data row of a different width fails with WrongInitialDimension.
func WithObjectives(n int) Option {
	return func(o *options) {
		o.objectives = n
	}
}

// WithMaxLineSize bounds the length of a single input line in bytes.
func WithMaxLineSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLineSize = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFileSystem sets the file system ReadFile opens paths on.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

func newOptions(opts []Option) options {
	o := options{maxLineSize: defaultMaxLineSize, fs: fs.Default}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// ReadFile reads the dataset stored at path.
func ReadFile(path string, opts ...Option) (*pointset.Dataset, error) {
	o := newOptions(opts)
	f, err := o.fs.Open(path)
	if err != nil {
		return nil, &Error{Kind: FileOpen, Path: path, Err: err}
	}
	defer f.Close()

	ds, err := read(f, o)
	if err != nil {
		var ie *Error
		if errors.As(err, &ie) {
			ie.Path = path
		}
		return nil, err
	}
	return ds, nil
}

// Read parses a dataset from r, decompressing it first if needed.
func Read(r io.Reader, opts ...Option) (*pointset.Dataset, error) {
	return read(r, newOptions(opts))
}

func read(r io.Reader, o options) (*pointset.Dataset, error) {
	src, kind, release, err := decompress(bufio.NewReader(r))
	defer release()
	if err != nil {
		return nil, &Error{Kind: FileOpen, Err: err}
	}

	p := parser{cols: o.objectives, set: 1}
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, min(64*1024, o.maxLineSize)), o.maxLineSize)
	for sc.Scan() {
		if err := p.line(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Kind: FileOpen, Line: p.lineNo + 1, Err: err}
	}
	if len(p.data) == 0 {
		return nil, &Error{Kind: EmptyInput}
	}

	points, err := pointset.FromData(p.data, len(p.sets), p.cols)
	if err != nil {
		return nil, err
	}
	ds, err := pointset.NewDataset(points, p.sets)
	if err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("dataset read",
			slog.String("compression", kind.String()),
			slog.Int("rows", ds.Rows()),
			slog.Int("objectives", ds.Dim()),
			slog.Int("sets", ds.NumSets()),
		)
	}
	return ds, nil
}

// parser accumulates rows line by line.
type parser struct {
	lineNo int
	cols   int
	set    int
	// open reports whether the current set has received a row.
	open bool
	data []float64
	sets []int
}

func (p *parser) line(text string) error {
	p.lineNo++
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		if p.open {
			p.set++
			p.open = false
		}
		return nil
	case trimmed[0] == '#':
		return nil
	}

	fields := strings.Fields(trimmed)
	if len(p.sets) == 0 {
		if p.cols > 0 && len(fields) != p.cols {
			return &Error{
				Kind: WrongInitialDimension,
				Line: p.lineNo,
				Err:  fmt.Errorf("expected %d objectives, got %d", p.cols, len(fields)),
			}
		}
		p.cols = len(fields)
	} else if len(fields) != p.cols {
		return &Error{
			Kind: ColumnCount,
			Line: p.lineNo,
			Err:  fmt.Errorf("expected %d columns, got %d", p.cols, len(fields)),
		}
	}

	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return &Error{Kind: Conversion, Line: p.lineNo, Err: err}
		}
		p.data = append(p.data, v)
	}
	p.sets = append(p.sets, p.set)
	p.open = true
	return nil
}
