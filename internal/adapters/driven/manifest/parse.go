package manifest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

// parseRows converts a header row plus data rows into manifest entries.
// Leading blank rows are skipped; blank data rows are ignored. A row whose
// cells do not parse still yields an entry, carrying the failure in
// ParseErr, so one bad row does not cost the rest of the batch.
func parseRows(rows [][]string) ([]domain.ManifestEntry, error) {
	start := 0
	for start < len(rows) && isBlank(rows[start]) {
		start++
	}
	if start == len(rows) {
		return nil, fmt.Errorf("%w: manifest has no header row", domain.ErrInvalidInput)
	}

	index, err := columnIndex(rows[start])
	if err != nil {
		return nil, err
	}

	var entries []domain.ManifestEntry
	for i := start + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		entries = append(entries, parseEntry(row, index, i+1))
	}
	return entries, nil
}

// columnIndex maps each required column to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	found := make(map[string]int, len(header))
	for i, name := range header {
		key := normalise(name)
		if _, dup := found[key]; !dup {
			found[key] = i
		}
	}

	index := make(map[string]int, len(domain.ManifestColumns()))
	for _, col := range domain.ManifestColumns() {
		i, ok := found[normalise(col)]
		if !ok {
			return nil, &domain.MissingColumnError{Column: col}
		}
		index[col] = i
	}
	return index, nil
}

// parseEntry reads one data row. line is the 1-based row number used in
// the parse error.
func parseEntry(row []string, index map[string]int, line int) domain.ManifestEntry {
	cell := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	entry := domain.ManifestEntry{
		FileName:  cell(domain.ManifestColumnFileName),
		Technique: cell(domain.ManifestColumnTechnique),
		Hand:      cell(domain.ManifestColumnHand),
	}

	var err error
	if entry.StartFrame, err = parseFrame(cell(domain.ManifestColumnStartFrame)); err != nil {
		entry.ParseErr = fmt.Errorf("manifest row %d: %s: %w", line, domain.ManifestColumnStartFrame, err)
		return entry
	}
	if entry.StopFrame, err = parseFrame(cell(domain.ManifestColumnStopFrame)); err != nil {
		entry.ParseErr = fmt.Errorf("manifest row %d: %s: %w", line, domain.ManifestColumnStopFrame, err)
	}
	return entry
}

// parseFrame accepts integers, and floats with no fractional part
// ("10.0") since spreadsheets often store whole numbers as floats.
func parseFrame(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: frame %q is not an integer", domain.ErrInvalidInput, s)
	}
	return int(f), nil
}

func normalise(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
