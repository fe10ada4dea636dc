package internal

import (
	"sort"

	"github.com/sitegz/sitegz/utility"
)

// DefaultExtensions is the built-in allow-list applied when gzip.extensions
// is absent from the site configuration.
var DefaultExtensions = []string{".html", ".css", ".js", ".xml", ".json", ".txt"}

// ExtensionSet is the allow-list of file extensions eligible for compression.
// Extensions are case-sensitive and carry the leading dot.
type ExtensionSet map[string]utility.Empty

func NewExtensionSet(extensions ...string) ExtensionSet {
	set := make(ExtensionSet, len(extensions))
	for _, extension := range extensions {
		set[extension] = utility.Empty{}
	}
	return set
}

func (set ExtensionSet) Contains(extension string) bool {
	_, ok := set[extension]
	return ok
}

// Matches reports whether the path's final extension is in the set.
// Multi-dot names such as "app.min.js" are judged by the last extension only.
func (set ExtensionSet) Matches(path string) bool {
	extension := utility.GetFileExtension(path)
	if extension == "" {
		return false
	}
	return set.Contains("." + extension)
}

func (set ExtensionSet) Slice() []string {
	extensions := make([]string, 0, len(set))
	for extension := range set {
		extensions = append(extensions, extension)
	}
	sort.Strings(extensions)
	return extensions
}
