package ingest

import (
	"errors"
	"fmt"
)

// Kind classifies an ingestion failure.
type Kind int

const (
	// EmptyInput means the input holds no data rows.
	EmptyInput Kind = iota + 1
	// WrongInitialDimension means the first data row does not have the requested number of objectives.
	WrongInitialDimension
	// FileOpen means the input could not be opened or its encoding is not supported.
	FileOpen
	// Conversion means a field is not a number.
	Conversion
	// ColumnCount means a data row has a different number of columns than the first row.
	ColumnCount
)

var (
	ErrEmptyInput            = errors.New("ingest: empty input")
	ErrWrongInitialDimension = errors.New("ingest: wrong initial dimension")
	ErrFileOpen              = errors.New("ingest: cannot open input")
	ErrConversion            = errors.New("ingest: conversion error")
	ErrColumnCount           = errors.New("ingest: inconsistent column count")
)

var kindErrors = map[Kind]error{
	EmptyInput:            ErrEmptyInput,
	WrongInitialDimension: ErrWrongInitialDimension,
	FileOpen:              ErrFileOpen,
	Conversion:            ErrConversion,
	ColumnCount:           ErrColumnCount,
}

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case WrongInitialDimension:
		return "WrongInitialDimension"
	case FileOpen:
		return "FileOpen"
	case Conversion:
		return "Conversion"
	case ColumnCount:
		return "ColumnCount"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error describes a failure to read a dataset.
//
// errors.Is matches the sentinel of its Kind; the underlying error (if any) can be
// accessed via errors.Unwrap.
type Error struct {
	Kind Kind
	// Path is the file name, empty for plain readers.
	Path string
	// Line is the 1-based input line, or 0 when the failure is not tied to a line.
	Line int
	Err  error
}

func (e *Error) Error() string {
	msg := "ingest: " + e.Kind.String()
	if sentinel, ok := kindErrors[e.Kind]; ok {
		msg = sentinel.Error()
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(": line %d", e.Line)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindErrors[e.Kind]
	return ok && target == sentinel
}
