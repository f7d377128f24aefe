package rsp

import "errors"

// Validation and degenerate-input errors returned by the scanning engine.
// All preconditions are checked at entry; numeric degeneracies that are
// expected in sparse data (zero-sum comparator inputs) are reported as NaN
// results instead of errors.
var (
	// ErrWindowRange is returned when a scanning window width is outside (0, 2π].
	ErrWindowRange = errors.New("scanning window must be in (0, 2π]")

	// ErrResolution is returned when the per-window bin count is below 1.
	ErrResolution = errors.New("resolution must be at least 1")

	// ErrEmptyBackground is returned when the background population is empty,
	// which would make the coverage ratio undefined.
	ErrEmptyBackground = errors.New("background population is empty")

	// ErrEmptyScanRange is returned when no scan centers are supplied.
	ErrEmptyScanRange = errors.New("scanning range is empty")

	// ErrUnsupportedMode is returned for a mode other than absolute or relative.
	ErrUnsupportedMode = errors.New("mode must be \"absolute\" or \"relative\"")

	// ErrMissingForeground2 is returned when relative mode is requested
	// without a second foreground population.
	ErrMissingForeground2 = errors.New("relative mode requires a second foreground population")

	// ErrUnexpectedForeground2 is returned when absolute mode is requested
	// with a second foreground population. The modes are mutually exclusive,
	// so a stray second foreground is rejected rather than silently ignored.
	ErrUnexpectedForeground2 = errors.New("absolute mode does not accept a second foreground population")

	// ErrLengthMismatch is returned when two vectors that must align by index
	// have different lengths.
	ErrLengthMismatch = errors.New("input vectors must have the same length")

	// ErrEmptyInput is returned when a comparison is requested on empty vectors.
	ErrEmptyInput = errors.New("input vectors must not be empty")
)
