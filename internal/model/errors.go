package model

import "errors"

// Input-contract violations. None of them is recoverable at runtime; callers
// reject the input before any output is produced.
var (
	ErrInvalidNoteName    = errors.New("invalid note name")
	ErrInvalidOffset      = errors.New("offset out of range [0,11]")
	ErrEmptyTuning        = errors.New("tuning has no strings")
	ErrInvalidFretCount   = errors.New("fret count out of range [1,36]")
	ErrInvalidStringCount = errors.New("unsupported string count")
	ErrStringIndex        = errors.New("string index out of range")
	ErrUnknownChord       = errors.New("unknown chord")
	ErrUnknownScale       = errors.New("unknown scale")
	ErrUnknownPreset      = errors.New("unknown tuning preset")
	ErrDuplicateName      = errors.New("duplicate name in table")
	ErrEmptyName          = errors.New("table entry has no name")
	ErrInvalidMode        = errors.New("invalid mode")
)
