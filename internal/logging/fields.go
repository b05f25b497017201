// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldLine  = "line"

	// Configuration fields.
	FieldFormat   = "format"
	FieldMaxDepth = "max_depth"
	FieldConfig   = "config"

	// Scan statistics fields.
	FieldNodes    = "nodes"
	FieldHeaders  = "headers"
	FieldBytes    = "bytes"
	FieldLanguage = "language"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
