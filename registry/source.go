package registry

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ErrDocumentNotFound is returned by a Source which doesn't have a document.
var ErrDocumentNotFound = errors.New("mapping document not found")

// Source provides catalog mapping documents by name.
type Source interface {
	// Open returns the content of document |name|, or ErrDocumentNotFound.
	Open(name string) ([]byte, error)
}

// SourceFunc adapts a function into a Source.
type SourceFunc func(name string) ([]byte, error)

// Open implements Source.
func (fn SourceFunc) Open(name string) ([]byte, error) { return fn(name) }

// EmbedSource returns a Source of documents under |dir| of |fsys|, which is
// typically an embed.FS.
func EmbedSource(fsys fs.FS, dir string) Source {
	return SourceFunc(func(name string) ([]byte, error) {
		var b, err = fs.ReadFile(fsys, path.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrDocumentNotFound
		}
		return b, err
	})
}

// DirSource returns a Source of documents under |dir| of the afero.Fs |afs|.
func DirSource(afs afero.Fs, dir string) Source {
	return SourceFunc(func(name string) ([]byte, error) {
		var b, err = afero.ReadFile(afs, filepath.Join(dir, name))
		if os.IsNotExist(err) {
			return nil, ErrDocumentNotFound
		}
		return b, err
	})
}

// Layered returns a Source which opens from the first of |sources| having
// the document.
func Layered(sources ...Source) Source {
	return SourceFunc(func(name string) ([]byte, error) {
		for _, s := range sources {
			var b, err = s.Open(name)
			if err == ErrDocumentNotFound {
				continue
			}
			return b, err
		}
		return nil, ErrDocumentNotFound
	})
}
