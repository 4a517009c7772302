package loader

import (
	"fmt"
)

// ErrorKind classifies load failures
type ErrorKind string

const (
	// KindRead means the file could not be read
	KindRead ErrorKind = "read"

	// KindParse means the file is not a well-formed document
	KindParse ErrorKind = "parse"

	// KindSchema means the document does not match the group schema
	KindSchema ErrorKind = "schema"
)

// LoadError describes why a group file could not be loaded
type LoadError struct {
	Kind ErrorKind
	Path string
	Err  error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	path := e.Path
	if path == "" {
		path = "<input>"
	}

	switch e.Kind {
	case KindRead:
		return fmt.Sprintf("failed to read group file %s: %v", path, e.Err)
	case KindParse:
		return fmt.Sprintf("failed to parse group file %s: %v", path, e.Err)
	case KindSchema:
		return fmt.Sprintf("error while validating group file %s: %v", path, e.Err)
	default:
		return fmt.Sprintf("failed to load group file %s: %v", path, e.Err)
	}
}

// Unwrap returns the underlying error
func (e *LoadError) Unwrap() error {
	return e.Err
}
