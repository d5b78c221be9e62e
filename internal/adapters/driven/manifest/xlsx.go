package manifest

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
)

var _ driven.ManifestReader = (*SpreadsheetReader)(nil)

// SpreadsheetReader reads manifests from the first sheet of a workbook.
type SpreadsheetReader struct {
	fs afero.Fs
}

// NewSpreadsheetReader creates a workbook reader over fs.
func NewSpreadsheetReader(fs afero.Fs) *SpreadsheetReader {
	return &SpreadsheetReader{fs: fs}
}

// Read returns the entries of the first sheet.
func (r *SpreadsheetReader) Read(_ context.Context, path string) ([]domain.ManifestEntry, error) {
	file, err := openFile(r.fs, path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	book, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook %s has no sheets", domain.ErrInvalidInput, path)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	return parseRows(rows)
}
