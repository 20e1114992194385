package table

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the input path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrNoHeader is returned for inputs without a header record.
	ErrNoHeader = errors.New("missing header row")
	// ErrColumnNotFound matches any *ColumnNotFoundError.
	ErrColumnNotFound = errors.New("column not found")
)

// ColumnNotFoundError reports a column name that is absent from the header.
type ColumnNotFoundError struct {
	Column string
	// Stage is the operation that needed the column (filter, sort, date).
	Stage string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column '%s' not found", e.Column)
}

func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }

// FileNotFoundError carries the path that could not be opened.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file '%s' not found", e.Path)
}

func (e *FileNotFoundError) Is(target error) bool { return target == ErrFileNotFound }

func (e *FileNotFoundError) Unwrap() error { return e.Err }
