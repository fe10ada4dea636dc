package lz4

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

const (
	AlgorithmName = "lz4"
	FileExtension = "lz4"
)

type Compressor struct{}

func (compressor Compressor) NewWriter(writer io.Writer) io.WriteCloser {
	lz4Writer := lz4.NewWriter(writer)
	err := lz4Writer.Apply(lz4.CompressionLevelOption(lz4.Level9))
	if err != nil {
		panic(err)
	}
	return lz4Writer
}

func (compressor Compressor) FileExtension() string {
	return FileExtension
}
