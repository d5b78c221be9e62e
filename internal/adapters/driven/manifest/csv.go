package manifest

import (
	"context"
	"encoding/csv"
	"fmt"

	"github.com/spf13/afero"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
)

var _ driven.ManifestReader = (*CSVReader)(nil)

// CSVReader reads comma-separated manifests.
type CSVReader struct {
	fs afero.Fs
}

// NewCSVReader creates a CSV manifest reader over fs.
func NewCSVReader(fs afero.Fs) *CSVReader {
	return &CSVReader{fs: fs}
}

// Read returns the manifest entries.
func (r *CSVReader) Read(_ context.Context, path string) ([]domain.ManifestEntry, error) {
	file, err := openFile(r.fs, path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cr := csv.NewReader(file)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return parseRows(rows)
}
