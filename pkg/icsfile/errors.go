package icsfile

import "errors"

var (
	ErrEmptyPath    = errors.New("icsfile: path is required")
	ErrEmptySummary = errors.New("icsfile: summary is required")
	ErrInvalidRange = errors.New("icsfile: end time must be after start time")
)
