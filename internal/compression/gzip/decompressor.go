package gzip

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

type Decompressor struct{}

func (decompressor Decompressor) Decompress(src io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(src)
}

func (decompressor Decompressor) FileExtension() string {
	return FileExtension
}
