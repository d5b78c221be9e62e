package driven

import "github.com/custodia-labs/mocapprep/internal/core/domain"

// TrialStore reads and writes capture files.
// Writes are atomic: a failed write never leaves a partial file behind.
type TrialStore interface {
	// ReadRaw splits a capture file into preamble lines, header and body.
	// Returns domain.ErrNotFound if the file does not exist and
	// domain.ErrShortFile if it has fewer than preambleLines lines.
	ReadRaw(path string, preambleLines int) (*domain.RawTrial, error)

	// WriteRaw writes preamble, header and rows in a single atomic write.
	WriteRaw(path string, raw *domain.RawTrial) error

	// ReadTrial parses a numeric table after skipping skipLines lines.
	// Empty cells are read as NaN.
	ReadTrial(path string, skipLines int) (*domain.Trial, error)

	// WriteTrial writes a numeric table atomically.
	WriteTrial(path string, trial *domain.Trial) error

	// List returns files directly inside dir whose base name matches pattern,
	// sorted by name.
	List(dir, pattern string) ([]string, error)

	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir string) error
}
