// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The extractor and normalizer never touch the filesystem directly;
// all file access goes through driven.TrialStore so the same code runs
// against the OS or an in-memory filesystem.
package services
