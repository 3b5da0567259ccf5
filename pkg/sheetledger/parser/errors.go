package parser

import "errors"

// ErrSchemaNotFound indicates a strict table is missing a required header column.
var ErrSchemaNotFound = errors.New("schema not found")

// ErrHeaderNotFound indicates an anchor was found but no header row follows it.
var ErrHeaderNotFound = errors.New("header row not found")

// ErrSheetDate indicates a sheet title does not end in a D/M/Y date.
var ErrSheetDate = errors.New("sheet title has no date")
