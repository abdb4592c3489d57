package pieceverify

import (
	"errors"
	"fmt"
)

// ErrUnmappedSlice's sentinel form, for errors.Is checks; use
// UnmappedSliceError for the path detail.
var ErrUnmappedSlice = errors.New("unmapped slice")

// UnmappedSliceError reports a FileSlice whose metainfo path has no entry in
// the Mapping.
type UnmappedSliceError struct {
	Path []string
}

func (e *UnmappedSliceError) Error() string {
	return fmt.Sprintf("unmapped slice: %v", e.Path)
}

func (e *UnmappedSliceError) Unwrap() error { return ErrUnmappedSlice }

// ErrSliceShortRead's sentinel form, for errors.Is checks; use
// SliceShortReadError for the read detail.
var ErrSliceShortRead = errors.New("slice short read")

// SliceShortReadError reports a positioned read that returned fewer bytes
// than the slice declares.
type SliceShortReadError struct {
	Path   []string
	Offset uint64
	Got    int
	Want   uint64
}

func (e *SliceShortReadError) Error() string {
	return fmt.Sprintf("short read on %v at offset %d: got %d want %d", e.Path, e.Offset, e.Got, e.Want)
}

func (e *SliceShortReadError) Unwrap() error { return ErrSliceShortRead }
