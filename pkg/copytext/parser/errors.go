package parser

import "errors"

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")
