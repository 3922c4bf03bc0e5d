package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Tree fields.
	FieldNodes    = "nodes"
	FieldTokens   = "tokens"
	FieldTextLen  = "text_len"
	FieldDepth    = "depth"
	FieldLanguage = "language"

	// Configuration fields.
	FieldConfig   = "config"
	FieldMaxDepth = "max_depth"
	FieldColor    = "color"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
