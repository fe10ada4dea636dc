package internal

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/wal-g/tracelog"
	"golang.org/x/sync/errgroup"

	"github.com/sitegz/sitegz/internal/compression"
	"github.com/sitegz/sitegz/utility"
)

// CompressFile writes a compressed sibling of path, leaving the original
// untouched. Files whose extension is not in allowed are silently skipped.
// The output path is path plus the compressor's extension; for the default
// gzip method that is always "<path>.gz". An existing output is truncated,
// so re-running simply regenerates it.
func CompressFile(path string, allowed ExtensionSet, compressor compression.Compressor) error {
	if !allowed.Matches(path) {
		tracelog.DebugLogger.Printf("Skipping %s: extension not in allow-list", path)
		return nil
	}

	source, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open source file %s", path)
	}
	defer utility.LoggedClose(source, "")

	fileInfo, err := source.Stat()
	if err != nil {
		return errors.Wrapf(err, "failed to stat source file %s", path)
	}

	dstPath := path + "." + compressor.FileExtension()
	dst, err := os.Create(dstPath)
	if err != nil {
		return errors.Wrapf(err, "failed to create destination file %s", dstPath)
	}

	var compressingWriter io.WriteCloser
	if metadataCompressor, ok := compressor.(compression.MetadataCompressor); ok {
		compressingWriter = metadataCompressor.NewWriterWithMetadata(dst, path, fileInfo.ModTime())
	} else {
		compressingWriter = compressor.NewWriter(dst)
	}

	if _, err = utility.FastCopy(compressingWriter, source); err != nil {
		utility.LoggedClose(dst, "")
		return errors.Wrapf(err, "failed to compress %s", path)
	}
	// Closing the compressing writer finalizes the container trailer
	// (CRC32 and uncompressed size for gzip).
	if err = compressingWriter.Close(); err != nil {
		utility.LoggedClose(dst, "")
		return errors.Wrapf(err, "failed to finalize %s", dstPath)
	}
	if err = dst.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", dstPath)
	}

	tracelog.DebugLogger.Printf("Compressed %s to %s", path, dstPath)
	return nil
}

// HandleCompressSite compresses every eligible output file the site reports.
// The first failure aborts the pass.
func HandleCompressSite(site Site) error {
	allowed := ResolveExtensions()
	compressor, err := ConfigureCompressor()
	if err != nil {
		return errors.Wrap(err, "failed to configure compressor")
	}
	tracelog.InfoLogger.Printf("Compressing site output at %s (method %s, extensions %v)",
		site.OutputRoot(), viper.GetString(CompressionMethodSetting), allowed.Slice())

	concurrency := ResolveConcurrency()
	if concurrency == 1 {
		return site.EachOutputFile(func(path string) error {
			return CompressFile(path, allowed, compressor)
		})
	}

	var group errgroup.Group
	group.SetLimit(concurrency)
	enumerationErr := site.EachOutputFile(func(path string) error {
		group.Go(func() error {
			return CompressFile(path, allowed, compressor)
		})
		return nil
	})
	compressionErr := group.Wait()
	if enumerationErr != nil {
		return enumerationErr
	}
	return compressionErr
}

// HandleCompressDirectory compresses an already-built site directory.
// It shares the enumeration and filter with the site-driven path.
func HandleCompressDirectory(directory string) error {
	return HandleCompressSite(NewDirectorySite(directory))
}
