package domain

import "fmt"

// Manifest column names as they appear in the header row.
const (
	ManifestColumnFileName   = "File name"
	ManifestColumnStartFrame = "start frame"
	ManifestColumnStopFrame  = "stop frame"
	ManifestColumnTechnique  = "technique"
	ManifestColumnHand       = "hand"
)

// ManifestColumns lists the required manifest columns in canonical order.
func ManifestColumns() []string {
	return []string{
		ManifestColumnFileName,
		ManifestColumnStartFrame,
		ManifestColumnStopFrame,
		ManifestColumnTechnique,
		ManifestColumnHand,
	}
}

// ManifestEntry is one extraction job: a frame range of one capture file.
// Frames are 1-based and the range is inclusive.
type ManifestEntry struct {
	FileName   string
	StartFrame int
	StopFrame  int
	Technique  string
	Hand       string

	// ParseErr is set when the row's cells could not be parsed. The entry
	// keeps whatever cells did parse so the failure can still be reported.
	ParseErr error
}

// Validate reports the row's parse error, if any, then checks the frame
// range and file name.
func (e ManifestEntry) Validate() error {
	if e.ParseErr != nil {
		return e.ParseErr
	}
	if e.FileName == "" {
		return fmt.Errorf("%w: empty file name", ErrInvalidInput)
	}
	if e.StartFrame < 1 {
		return fmt.Errorf("%w: start frame %d must be >= 1", ErrInvalidInput, e.StartFrame)
	}
	if e.StopFrame < e.StartFrame {
		return fmt.Errorf("%w: stop frame %d before start frame %d", ErrInvalidInput, e.StopFrame, e.StartFrame)
	}
	return nil
}

// FrameCount returns the number of frames the range covers.
func (e ManifestEntry) FrameCount() int {
	return e.StopFrame - e.StartFrame + 1
}

// InputName returns the capture file name the entry refers to.
func (e ManifestEntry) InputName() string {
	return e.FileName + ".csv"
}

// OutputName returns the traceable name of the extracted segment.
func (e ManifestEntry) OutputName() string {
	return fmt.Sprintf("%s_frames_%d-%d_technique_%s_hand_%s.csv",
		e.FileName, e.StartFrame, e.StopFrame, e.Technique, e.Hand)
}
