package ingest

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/moogo/internal/fs"
)

const sample = `# first set
1 2
2.5 1

# second set
0.5 3
3 0.5


4e0 -1
`

func TestRead(t *testing.T) {
	ds, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Dim())
	assert.Equal(t, 5, ds.Rows())
	assert.Equal(t, []int{1, 1, 2, 2, 3}, ds.Sets())
	assert.Equal(t, [][]float64{{1, 2}, {2.5, 1}, {0.5, 3}, {3, 0.5}, {4, -1}}, ds.Points().ToRows())
}

func TestReadCommentsDoNotSplitSets(t *testing.T) {
	ds, err := Read(strings.NewReader("1 2\n# note\n3 4\n  \t\n5 6\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2}, ds.Sets())
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
		kind  Kind
		want  error
		line  int
	}{
		{"Empty", "", nil, EmptyInput, ErrEmptyInput, 0},
		{"OnlyComments", "# a\n\n# b\n", nil, EmptyInput, ErrEmptyInput, 0},
		{"ColumnCount", "1 2\n3 4 5\n", nil, ColumnCount, ErrColumnCount, 2},
		{"ColumnCountNextSet", "1 2\n\n3\n", nil, ColumnCount, ErrColumnCount, 3},
		{"Conversion", "1 2\n3 x\n", nil, Conversion, ErrConversion, 2},
		{"WrongInitialDimension", "# c\n1 2\n", []Option{WithObjectives(3)}, WrongInitialDimension, ErrWrongInitialDimension, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.opts...)
			require.Error(t, err)

			var ie *Error
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.kind, ie.Kind)
			assert.Equal(t, tt.line, ie.Line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadWithObjectives(t *testing.T) {
	ds, err := Read(strings.NewReader("1 2 3\n4 5 6\n"), WithObjectives(3))
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Dim())
}

func TestReadLineTooLong(t *testing.T) {
	_, err := Read(strings.NewReader(strings.Repeat("1 ", 100)+"\n"), WithMaxLineSize(16))
	assert.ErrorIs(t, err, ErrFileOpen)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "front.dat")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	ds, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.NumSets())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.dat"))
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, FileOpen, ie.Kind)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(t.TempDir(), "bad.dat")
	require.NoError(t, os.WriteFile(bad, []byte("1 2\n1\n"), 0o600))
	_, err = ReadFile(bad)
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, bad, ie.Path)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadFileFaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "front.dat")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	ffs := fs.NewFaultyFS(nil)
	// The read fails right after the first line.
	ffs.AddRule("front", fs.Fault{FailAfterBytes: int64(len("# first set\n"))})

	_, err := ReadFile(path, WithFileSystem(ffs))
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, FileOpen, ie.Kind)
	assert.Equal(t, path, ie.Path)
	assert.Equal(t, 2, ie.Line)
	assert.ErrorIs(t, err, fs.ErrInjected)

	ffs.AddRule("front.dat", fs.Fault{FailOnOpen: true})
	_, err = ReadFile(path, WithFileSystem(ffs))
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, FileOpen, ie.Kind)
	assert.Zero(t, ie.Line)
	assert.ErrorIs(t, err, fs.ErrInjected)
}

func compressed(t *testing.T, kind Compression, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	switch kind {
	case CompressionGzip:
		w := gzip.NewWriter(&buf)
		_, err := w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case CompressionZstd:
		w, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case CompressionLZ4:
		w := lz4.NewWriter(&buf)
		_, err := w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	default:
		t.Fatalf("no writer for %s", kind)
	}
	return buf.Bytes()
}

func TestReadCompressed(t *testing.T) {
	want, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	for _, kind := range []Compression{CompressionGzip, CompressionZstd, CompressionLZ4} {
		t.Run(kind.String(), func(t *testing.T) {
			blob := compressed(t, kind, []byte(sample))

			got, err := Detect(bufio.NewReader(bytes.NewReader(blob)))
			require.NoError(t, err)
			assert.Equal(t, kind, got)

			// Twice, so pooled decoders are reused.
			for range 2 {
				ds, err := Read(bytes.NewReader(blob))
				require.NoError(t, err)
				assert.True(t, want.Points().Equal(ds.Points()))
				assert.Equal(t, want.Sets(), ds.Sets())
			}
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		input []byte
		want  Compression
	}{
		{[]byte("1 2\n"), CompressionNone},
		{nil, CompressionNone},
		{[]byte("BZh91AY&SY"), CompressionBzip2},
		{[]byte{0xfd, '7', 'z', 'X', 'Z', 0x00, 0x00}, CompressionXZ},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := Detect(bufio.NewReader(bytes.NewReader(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadXZUnsupported(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{0xfd, '7', 'z', 'X', 'Z', 0x00, 0x01}))
	assert.ErrorIs(t, err, ErrFileOpen)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ColumnCount", ColumnCount.String())
	assert.Equal(t, "Unknown(42)", Kind(42).String())
}
