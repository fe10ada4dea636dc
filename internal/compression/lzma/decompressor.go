package lzma

import (
	"io"

	"github.com/ulikunitz/xz/lzma"
)

type Decompressor struct{}

func (decompressor Decompressor) Decompress(src io.Reader) (io.ReadCloser, error) {
	lzmaReader, err := lzma.NewReader(src)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(lzmaReader), nil
}

func (decompressor Decompressor) FileExtension() string {
	return FileExtension
}
