// Package csvfs provides the filesystem-backed TrialStore.
//
// Capture files are plain CSV with an optional run of opaque preamble
// lines before the column header. The store works on any afero.Fs, so
// services can be tested against an in-memory filesystem.
//
// # Atomic Writes
//
// Every write is staged in a temporary file in the destination directory
// and renamed into place, so a failure never leaves a partial file.
package csvfs
