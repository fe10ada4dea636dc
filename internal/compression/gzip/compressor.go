package gzip

import (
	"io"
	"time"

	"github.com/klauspost/compress/gzip"
)

const (
	AlgorithmName = "gzip"
	FileExtension = "gz"
)

type Compressor struct{}

func (compressor Compressor) NewWriter(writer io.Writer) io.WriteCloser {
	gzipWriter, err := gzip.NewWriterLevel(writer, gzip.BestCompression)
	if err != nil {
		panic(err)
	}
	return gzipWriter
}

// NewWriterWithMetadata fills the gzip header's FNAME and MTIME fields so the
// produced container records the source file's name and modification time.
// FNAME is limited to Latin-1 by the format; names it cannot carry are omitted
// rather than failing the write.
func (compressor Compressor) NewWriterWithMetadata(writer io.Writer, name string, modTime time.Time) io.WriteCloser {
	gzipWriter, err := gzip.NewWriterLevel(writer, gzip.BestCompression)
	if err != nil {
		panic(err)
	}
	if isLatin1(name) {
		gzipWriter.Name = name
	}
	gzipWriter.ModTime = modTime
	return gzipWriter
}

func isLatin1(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}

func (compressor Compressor) FileExtension() string {
	return FileExtension
}
