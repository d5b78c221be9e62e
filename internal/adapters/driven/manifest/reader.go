package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
)

var _ driven.ManifestReader = (*Reader)(nil)

// Reader dispatches to a format-specific reader by file extension.
type Reader struct {
	readers map[string]driven.ManifestReader
}

// NewReader creates a dispatching reader over fs.
// A nil fs uses the OS filesystem.
func NewReader(fs afero.Fs) *Reader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	xlsx := NewSpreadsheetReader(fs)
	return &Reader{
		readers: map[string]driven.ManifestReader{
			".xlsx": xlsx,
			".xlsm": xlsx,
			".csv":  NewCSVReader(fs),
		},
	}
}

// Extensions returns the supported file extensions.
func (r *Reader) Extensions() []string {
	exts := make([]string, 0, len(r.readers))
	for ext := range r.readers {
		exts = append(exts, ext)
	}
	return exts
}

// Read selects a reader by extension and returns its entries.
func (r *Reader) Read(ctx context.Context, path string) ([]domain.ManifestEntry, error) {
	ext := strings.ToLower(filepath.Ext(path))
	reader, ok := r.readers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: manifest format %q", domain.ErrUnsupportedType, ext)
	}
	return reader.Read(ctx, path)
}

func openFile(fs afero.Fs, path string) (afero.File, error) {
	f, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: manifest %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening manifest %s: %w", path, err)
	}
	return f, nil
}
