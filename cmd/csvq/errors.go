package main

import "errors"

// Sentinel errors for command operations
var (
	ErrRowOutOfRange    = errors.New("row index out of range")
	ErrColumnOutOfRange = errors.New("column index out of range")
	ErrInvalidDelimiter = errors.New("delimiter must be a single character")
)
