package domain

import (
	"fmt"
	"strings"
)

// Identifier column names written by the capture system.
const (
	ColumnFrame    = "Frame"
	ColumnSubFrame = "Sub Frame"
)

// Axis identifies the coordinate axis of a marker column.
type Axis byte

// Available axes.
const (
	AxisX Axis = 'X'
	AxisY Axis = 'Y'
	AxisZ Axis = 'Z'
)

// Axes returns all axes in output order.
func Axes() []Axis {
	return []Axis{AxisX, AxisY, AxisZ}
}

// ParseAxis converts "X", "Y" or "Z" (any case) to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return AxisX, nil
	case "Y":
		return AxisY, nil
	case "Z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("%w: unknown axis %q", ErrInvalidInput, s)
	}
}

// String returns the single-letter axis name.
func (a Axis) String() string {
	return string(a)
}

// Index returns 0, 1 or 2 for X, Y, Z and -1 otherwise.
func (a Axis) Index() int {
	switch a {
	case AxisX:
		return 0
	case AxisY:
		return 1
	case AxisZ:
		return 2
	default:
		return -1
	}
}

// AxisOf reports the axis of a column from its leading character.
// Columns that do not start with X, Y or Z have no axis.
func AxisOf(column string) (Axis, bool) {
	if column == "" {
		return 0, false
	}
	switch a := Axis(column[0]); a {
	case AxisX, AxisY, AxisZ:
		return a, true
	default:
		return 0, false
	}
}

// CoordinateColumn returns the column name for a marker along an axis,
// e.g. "X.Subj1:LHEE".
func CoordinateColumn(axis Axis, marker string) string {
	return axis.String() + "." + marker
}

// IsIdentifierColumn reports whether name is Frame or Sub Frame.
func IsIdentifierColumn(name string) bool {
	return name == ColumnFrame || name == ColumnSubFrame
}

// AxisSet is an ordered set of axes.
type AxisSet []Axis

// Contains returns true if the set holds a.
func (s AxisSet) Contains(a Axis) bool {
	for _, x := range s {
		if x == a {
			return true
		}
	}
	return false
}

// Strings returns the axis names.
func (s AxisSet) Strings() []string {
	out := make([]string, len(s))
	for i, a := range s {
		out[i] = a.String()
	}
	return out
}

// ParseAxisSet parses axis names, ignoring duplicates.
func ParseAxisSet(names []string) (AxisSet, error) {
	set := make(AxisSet, 0, len(names))
	for _, n := range names {
		a, err := ParseAxis(n)
		if err != nil {
			return nil, err
		}
		if !set.Contains(a) {
			set = append(set, a)
		}
	}
	return set, nil
}

// Column is one named series of a trial.
type Column struct {
	Name   string
	Values []float64
}

// Trial is a tabular time series of marker coordinates.
// All columns have the same length; row i is frame i+1.
type Trial struct {
	Columns []Column
}

// Len returns the number of rows.
func (t *Trial) Len() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Column looks up a column by name.
func (t *Trial) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Names returns the column names in order.
func (t *Trial) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Clone returns a deep copy.
func (t *Trial) Clone() *Trial {
	out := &Trial{Columns: make([]Column, len(t.Columns))}
	for i, c := range t.Columns {
		out.Columns[i] = Column{Name: c.Name, Values: append([]float64(nil), c.Values...)}
	}
	return out
}

// Origin is a subject-relative coordinate origin.
type Origin [3]float64

// Component returns the origin coordinate along a.
func (o Origin) Component(a Axis) float64 {
	return o[a.Index()]
}

// RawTrial is a capture file as exported: opaque preamble lines followed by
// a column header record and body records. Preamble lines keep their line
// terminators so they can be written back byte-for-byte.
type RawTrial struct {
	Preamble []string
	Header   []string
	Rows     [][]string
}

// Frames returns body rows start..stop (1-based, inclusive).
func (r *RawTrial) Frames(start, stop int) ([][]string, error) {
	if start < 1 || stop < start {
		return nil, fmt.Errorf("%w: frames %d-%d", ErrInvalidInput, start, stop)
	}
	if stop > len(r.Rows) {
		return nil, fmt.Errorf("%w: frames %d-%d requested, trial has %d", ErrFrameRange, start, stop, len(r.Rows))
	}
	return r.Rows[start-1 : stop], nil
}
