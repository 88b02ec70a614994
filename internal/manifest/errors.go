package manifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for the manifest package
var (
	// ErrEmptyDocument indicates the manifest file contains no JSON value
	ErrEmptyDocument = errors.New("manifest is empty")

	// ErrTrailingData indicates extra content after the top-level JSON value
	ErrTrailingData = errors.New("unexpected data after top-level JSON value")

	// ErrInvalidUTF8 indicates the manifest bytes are not valid UTF-8 text
	ErrInvalidUTF8 = errors.New("manifest is not valid UTF-8")
)

// FileReadError represents a failure to open or read the manifest file
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("could not read %s from %q: %v", FileName, e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// NewFileReadError creates a new FileReadError
func NewFileReadError(path string, err error) *FileReadError {
	return &FileReadError{
		Path: path,
		Err:  err,
	}
}

// ParseError represents manifest content that is not well-formed JSON
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse %s: %v", FileName, e.Err)
	}
	return fmt.Sprintf("failed to parse %s %q: %v", FileName, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(path string, err error) *ParseError {
	return &ParseError{
		Path: path,
		Err:  err,
	}
}
