// Package domain defines the core entities for mocapprep.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ManifestEntry: One frame-extraction job read from a manifest
//   - RawTrial: A capture file split into preamble, header and body records
//   - Trial: Named numeric columns of one recording
//   - Result / Run: Per-item outcomes and the batch that produced them
//   - Settings: Pipeline configuration with documented defaults
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
