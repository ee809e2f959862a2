package ingest

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"errors"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the encoding of an input stream.
type Compression uint8

const (
	// CompressionNone is plain text.
	CompressionNone Compression = iota
	// CompressionGzip is a gzip stream.
	CompressionGzip
	// CompressionZstd is a zstd stream.
	CompressionZstd
	// CompressionLZ4 is an lz4 frame stream.
	CompressionLZ4
	// CompressionBzip2 is a bzip2 stream.
	CompressionBzip2
	// CompressionXZ is an xz stream. It is recognised but not supported.
	CompressionXZ
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	case CompressionBzip2:
		return "bzip2"
	case CompressionXZ:
		return "xz"
	default:
		return "unknown"
	}
}

var magics = []struct {
	prefix []byte
	kind   Compression
}{
	{[]byte{0x1f, 0x8b}, CompressionGzip},
	{[]byte{0x28, 0xb5, 0x2f, 0xfd}, CompressionZstd},
	{[]byte{0x04, 0x22, 0x4d, 0x18}, CompressionLZ4},
	{[]byte("BZh"), CompressionBzip2},
	{[]byte{0xfd, '7', 'z', 'X', 'Z', 0x00}, CompressionXZ},
}

// Detect inspects the first bytes of br without consuming them.
func Detect(br *bufio.Reader) (Compression, error) {
	head, err := br.Peek(6)
	if err != nil && !errors.Is(err, io.EOF) {
		return CompressionNone, err
	}
	for _, m := range magics {
		if bytes.HasPrefix(head, m.prefix) {
			return m.kind, nil
		}
	}
	return CompressionNone, nil
}

// zstd decoders are pooled; each one owns its window buffers.
var zstdDecoderPool sync.Pool

func getZstdDecoder(r io.Reader) (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		dec := v.(*zstd.Decoder)
		if err := dec.Reset(r); err != nil {
			return nil, err
		}
		return dec, nil
	}
	return zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
}

func putZstdDecoder(dec *zstd.Decoder) {
	// Drop the reference to the source before pooling.
	_ = dec.Reset(nil)
	zstdDecoderPool.Put(dec)
}

// decompress wraps br according to its detected encoding. The returned release
// function must be called once the stream has been consumed.
func decompress(br *bufio.Reader) (io.Reader, Compression, func(), error) {
	noop := func() {}
	kind, err := Detect(br)
	if err != nil {
		return nil, kind, noop, err
	}

	switch kind {
	case CompressionGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, kind, noop, err
		}
		return zr, kind, func() { _ = zr.Close() }, nil
	case CompressionZstd:
		dec, err := getZstdDecoder(br)
		if err != nil {
			return nil, kind, noop, err
		}
		return dec, kind, func() { putZstdDecoder(dec) }, nil
	case CompressionLZ4:
		return lz4.NewReader(br), kind, noop, nil
	case CompressionBzip2:
		return bzip2.NewReader(br), kind, noop, nil
	case CompressionXZ:
		return nil, kind, noop, errors.New("xz compressed input is not supported")
	default:
		return br, kind, noop, nil
	}
}
