package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

// capturePreamble mimics the metadata block of a motion capture export.
// The first line uses CRLF to check that preamble bytes survive untouched.
var capturePreamble = []string{
	"Trajectories\r\n",
	"100\n",
	",,Subj1:LHEE,,,Subj1:RHEE,,\n",
}

var captureHeader = []string{
	"Frame", "Sub Frame",
	"X.Subj1:LHEE", "Y.Subj1:LHEE", "Z.Subj1:LHEE",
	"X.Subj1:RHEE", "Y.Subj1:RHEE", "Z.Subj1:RHEE",
}

// writeCapture writes a capture file with the standard preamble and n body
// rows. Row f (1-based) holds LHEE = (100+f, 10, 5) and RHEE = (200+f, 30, 7).
func writeCapture(t *testing.T, fs afero.Fs, path string, n int) {
	t.Helper()

	var b strings.Builder
	for _, line := range capturePreamble {
		b.WriteString(line)
	}
	b.WriteString(strings.Join(captureHeader, ",") + "\n")
	for f := 1; f <= n; f++ {
		fmt.Fprintf(&b, "%d,0,%d,10,5,%d,30,7\n", f, 100+f, 200+f)
	}
	require.NoError(t, afero.WriteFile(fs, path, []byte(b.String()), 0o644))
}

// writeTable writes a header-first numeric CSV.
func writeTable(t *testing.T, fs afero.Fs, path string, header []string, rows [][]float64) {
	t.Helper()

	var b strings.Builder
	b.WriteString(strings.Join(header, ",") + "\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		b.WriteString(strings.Join(cells, ",") + "\n")
	}
	require.NoError(t, afero.WriteFile(fs, path, []byte(b.String()), 0o644))
}

// stubManifest returns fixed entries.
type stubManifest struct {
	entries []domain.ManifestEntry
	err     error
}

func (m stubManifest) Read(context.Context, string) ([]domain.ManifestEntry, error) {
	return m.entries, m.err
}

// readLines returns the lines of a file without terminators.
func readLines(t *testing.T, fs afero.Fs, path string) []string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// columnValues returns the values of a named column.
func columnValues(t *testing.T, trial *domain.Trial, name string) []float64 {
	t.Helper()
	col, ok := trial.Column(name)
	require.True(t, ok, "missing column %s", name)
	return col.Values
}
