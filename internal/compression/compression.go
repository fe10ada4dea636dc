package compression

import (
	"fmt"
	"io"
	"time"

	"github.com/sitegz/sitegz/internal/compression/brotli"
	"github.com/sitegz/sitegz/internal/compression/gzip"
	"github.com/sitegz/sitegz/internal/compression/lz4"
	"github.com/sitegz/sitegz/internal/compression/lzma"
	"github.com/sitegz/sitegz/internal/compression/zstd"
)

var CompressingAlgorithms = []string{
	gzip.AlgorithmName,
	brotli.AlgorithmName,
	zstd.AlgorithmName,
	lz4.AlgorithmName,
	lzma.AlgorithmName,
}

// Compressor produces a compressed stream in one container format,
// always at the format's maximum compression level.
type Compressor interface {
	NewWriter(writer io.Writer) io.WriteCloser
	FileExtension() string
}

// MetadataCompressor is implemented by compressors whose container format
// embeds the original filename and modification time (gzip).
type MetadataCompressor interface {
	Compressor
	NewWriterWithMetadata(writer io.Writer, name string, modTime time.Time) io.WriteCloser
}

type Decompressor interface {
	Decompress(src io.Reader) (io.ReadCloser, error)
	FileExtension() string
}

var Compressors = map[string]Compressor{
	gzip.AlgorithmName:   gzip.Compressor{},
	brotli.AlgorithmName: brotli.Compressor{},
	zstd.AlgorithmName:   zstd.Compressor{},
	lz4.AlgorithmName:    lz4.Compressor{},
	lzma.AlgorithmName:   lzma.Compressor{},
}

var Decompressors = []Decompressor{
	gzip.Decompressor{},
	brotli.Decompressor{},
	zstd.Decompressor{},
	lz4.Decompressor{},
	lzma.Decompressor{},
}

func GetDecompressorByCompressor(compressor Compressor) Decompressor {
	return FindDecompressor(compressor.FileExtension())
}

func FindDecompressor(fileExtension string) Decompressor {
	for _, decompressor := range Decompressors {
		if decompressor.FileExtension() == fileExtension {
			return decompressor
		}
	}
	return nil
}

type UnknownCompressionMethodError struct {
	Method string
}

func NewUnknownCompressionMethodError(method string) UnknownCompressionMethodError {
	return UnknownCompressionMethodError{Method: method}
}

func (err UnknownCompressionMethodError) Error() string {
	return fmt.Sprintf("unknown compression method: '%s', supported methods are: %v",
		err.Method, CompressingAlgorithms)
}
