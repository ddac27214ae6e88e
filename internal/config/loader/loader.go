// Package loader reads kilua configuration sources into plain maps.
//
// Each source (a TOML file or the process environment) produces a
// map[string]any. Merge folds the maps together, later sources winning,
// and package config decodes the result into its typed Config.
package loader

import (
	"io/fs"
	"os"
)

// Loader is a configuration source. Load returns nil, nil when the source
// does not exist.
type Loader interface {
	Load() (map[string]any, error)
}

// Source is a Loader with the name recorded when it contributes settings.
// An empty Name is never recorded.
type Source struct {
	Name string
	Loader
}

// Merge loads sources in order and deep merges them into one map. It
// returns the names of the sources that existed, in order. The first
// failing source stops the merge.
func Merge(sources ...Source) (map[string]any, []string, error) {
	merged := make(map[string]any)
	var used []string
	for _, src := range sources {
		m, err := src.Load()
		if err != nil {
			return nil, nil, err
		}
		if m == nil {
			continue
		}
		DeepMerge(merged, m)
		if src.Name != "" {
			used = append(used, src.Name)
		}
	}
	return merged, used, nil
}

// FileSystem is where TOML sources are read from. Tests use an in-memory
// implementation.
type FileSystem interface {
	fs.FS
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error)    { return os.Open(name) }
func (osFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (osFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return osFS{}
}
