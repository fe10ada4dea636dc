package internal

import (
	"io/fs"
	"path/filepath"

	"github.com/pkg/errors"
)

// Site is the build pipeline's view of a fully generated static site.
// The compressor only needs to visit every output file's destination path;
// iteration order is whatever the site yields.
type Site interface {
	OutputRoot() string
	EachOutputFile(fn func(path string) error) error
}

// DirectorySite adapts an already-built output directory on disk to the
// Site interface, for compressing a site without the generating pipeline.
type DirectorySite struct {
	root string
}

func NewDirectorySite(root string) DirectorySite {
	return DirectorySite{root: root}
}

func (site DirectorySite) OutputRoot() string {
	return site.root
}

// EachOutputFile walks the output root recursively and yields every regular
// file. Symlinks are not followed.
func (site DirectorySite) EachOutputFile(fn func(path string) error) error {
	err := filepath.WalkDir(site.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		return fn(path)
	})
	return errors.Wrapf(err, "failed to walk site output at %s", site.root)
}
