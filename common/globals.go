// Package common holds the handful of process-wide constants the rest
// of the analyzer needs regardless of which package is asking.
package common

// AnalyzerVersion is the current analyzer version as a string.
const AnalyzerVersion string = "0.1.0"

// ProjectFileName is the name of the optional per-project settings
// file consulted by package config.
const ProjectFileName string = "cminor.toml"

// SourceFileExt is the file extension expected of an analyzable
// source file.
const SourceFileExt string = ".cm"
