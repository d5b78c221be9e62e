package csvfs

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.TrialStore = (*Store)(nil)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// Store reads and writes capture files on an afero filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore creates a store over fs. A nil fs uses the OS filesystem.
func NewStore(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// ReadRaw splits a capture file into preamble, header and body records.
func (s *Store) ReadRaw(path string, preambleLines int) (*domain.RawTrial, error) {
	f, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	raw := &domain.RawTrial{}
	for i := 0; i < preambleLines; i++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading preamble: %w", err)
		}
		if line == "" {
			return nil, fmt.Errorf("%w: %s has %d lines, expected at least %d", domain.ErrShortFile, path, i, preambleLines)
		}
		raw.Preamble = append(raw.Preamble, line)
	}

	r := newReader(br)
	raw.Header, err = r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s has no column header", domain.ErrShortFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	raw.Rows, err = r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return raw, nil
}

// WriteRaw writes preamble lines verbatim, then header and rows as CSV
// with "\n" line endings, in a single atomic write. Cells are quoted only
// when they hold a comma, a quote or a line break, so padded cells such
// as " 110" come out as they went in.
func (s *Store) WriteRaw(path string, raw *domain.RawTrial) error {
	if raw == nil {
		return domain.ErrInvalidInput
	}

	var buf bytes.Buffer
	for _, line := range raw.Preamble {
		buf.WriteString(line)
	}

	writeRecord(&buf, raw.Header)
	for _, row := range raw.Rows {
		writeRecord(&buf, row)
	}

	return s.writeAtomic(path, buf.Bytes())
}

// writeRecord appends one CSV record. encoding/csv also quotes cells with
// a leading space, which would change extracted cells.
func writeRecord(buf *bytes.Buffer, record []string) {
	for i, cell := range record {
		if i > 0 {
			buf.WriteByte(',')
		}
		if !strings.ContainsAny(cell, ",\"\r\n") {
			buf.WriteString(cell)
			continue
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

// ReadTrial parses a numeric table after skipping skipLines lines.
// Empty or missing cells become NaN.
func (s *Store) ReadTrial(path string, skipLines int) (*domain.Trial, error) {
	f, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	for i := 0; i < skipLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return nil, fmt.Errorf("%w: %s ended before line %d", domain.ErrShortFile, path, i+1)
		}
	}

	r := newReader(br)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s has no column header", domain.ErrShortFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	trial := &domain.Trial{Columns: make([]domain.Column, len(header))}
	for i, name := range header {
		trial.Columns[i].Name = strings.TrimSpace(name)
	}

	for line := 1; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", line, err)
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				domain.ErrInvalidInput, line, len(record), len(header))
		}
		for i := range trial.Columns {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			v, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: column %s row %d: %q",
					domain.ErrNonNumeric, trial.Columns[i].Name, line, cell)
			}
			trial.Columns[i].Values = append(trial.Columns[i].Values, v)
		}
	}
	return trial, nil
}

// WriteTrial writes a numeric table atomically. NaN is written as an
// empty cell.
func (s *Store) WriteTrial(path string, trial *domain.Trial) error {
	if trial == nil {
		return domain.ErrInvalidInput
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(trial.Names()); err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}

	record := make([]string, len(trial.Columns))
	for row := 0; row < trial.Len(); row++ {
		for i, col := range trial.Columns {
			record[i] = formatCell(col.Values[row])
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("encoding row %d: %w", row+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encoding trial: %w", err)
	}

	return s.writeAtomic(path, buf.Bytes())
}

// List returns files directly inside dir whose base name matches pattern.
func (s *Store) List(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad pattern %q", domain.ErrInvalidInput, pattern)
	}

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, dir)
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("matching %s: %w", entry.Name(), err)
		}
		if ok {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// MkdirAll creates dir and any missing parents.
func (s *Store) MkdirAll(dir string) error {
	return s.fs.MkdirAll(dir, dirPerm)
}

func (s *Store) open(path string) (afero.File, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, err
	}
	return f, nil
}

// writeAtomic stages data in a temp file beside path and renames it into place.
func (s *Store) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(s.fs, dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	_ = s.fs.Chmod(tmpPath, filePerm)

	if err := s.fs.Rename(tmpPath, path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(cell, 64)
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
