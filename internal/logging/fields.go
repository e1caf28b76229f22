package logging

// Field name constants for structured logging.
const (
	FieldError = "error"
	FieldPath  = "path"
	FieldFiles = "files"

	// Reader fields.
	FieldLine      = "line"
	FieldCol       = "col"
	FieldDepth     = "depth"
	FieldBytes     = "bytes"
	FieldDropped   = "dropped"
	FieldTokens    = "tokens"
	FieldCapacity  = "capacity"
	FieldChunkSize = "chunk_size"
	FieldStrict    = "strict"
	FieldForms     = "forms"
	FieldNodes     = "nodes"
	FieldFormat    = "format"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
