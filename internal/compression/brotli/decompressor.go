package brotli

import (
	"io"

	"github.com/andybalholm/brotli"
)

type Decompressor struct{}

func (decompressor Decompressor) Decompress(src io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(src)), nil
}

func (decompressor Decompressor) FileExtension() string {
	return FileExtension
}
