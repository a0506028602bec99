package emitter

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FileMap is an insertion-ordered map of relative file paths to file contents.
// The packager writes archive members in exactly this order, so emission order
// is the archive order.
type FileMap struct {
	m *orderedmap.OrderedMap[string, []byte]
}

// NewFileMap returns an empty file map.
func NewFileMap() *FileMap {
	return &FileMap{m: orderedmap.New[string, []byte]()}
}

// Set stores content under path. Re-setting an existing path replaces the
// content but keeps the original position.
func (fm *FileMap) Set(path string, content []byte) {
	fm.m.Set(path, content)
}

// SetString stores string content under path.
func (fm *FileMap) SetString(path, content string) {
	fm.m.Set(path, []byte(content))
}

// Get returns the content stored under path.
func (fm *FileMap) Get(path string) ([]byte, bool) {
	return fm.m.Get(path)
}

// GetString returns the content stored under path as a string.
func (fm *FileMap) GetString(path string) (string, bool) {
	b, ok := fm.m.Get(path)
	return string(b), ok
}

// Len returns the number of files.
func (fm *FileMap) Len() int {
	return fm.m.Len()
}

// Paths returns all file paths in insertion order.
func (fm *FileMap) Paths() []string {
	paths := make([]string, 0, fm.m.Len())
	for pair := fm.m.Oldest(); pair != nil; pair = pair.Next() {
		paths = append(paths, pair.Key)
	}
	return paths
}

// Range calls fn for every file in insertion order until fn returns false.
func (fm *FileMap) Range(fn func(path string, content []byte) bool) {
	for pair := fm.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Asset names an archive member that the emitter referenced but whose bytes
// must be supplied by the caller (image fills fetched outside the pipeline).
type Asset struct {
	// Path is the archive-relative location the emitted code points at.
	Path string

	// NodeID is the source node carrying the image fill.
	NodeID string

	// ImageRef is the image reference from the design document, used to
	// resolve a download URL.
	ImageRef string
}
