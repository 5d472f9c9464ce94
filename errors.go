// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "fmt"

// ErrINVAL reports an invalid argument passed to one of the Heap
// methods, e.g. a handle/Addr out of the arena's current bounds.
type ErrINVAL struct {
	Src string
	Arg interface{}
}

func (e *ErrINVAL) Error() string {
	return fmt.Sprintf("%s: invalid argument %v", e.Src, e.Arg)
}

// ErrPERM reports an operation that is illegal given the Heap's current
// state. Nothing in the core malloc/free/realloc path returns it today;
// it exists for the same reason lldb.MemFiler guards unbalanced
// BeginUpdate/EndUpdate - a place for a future transactional wrapper to
// report into without inventing a new error family.
type ErrPERM struct {
	Src string
}

func (e *ErrPERM) Error() string {
	return fmt.Sprintf("%s: operation not permitted", e.Src)
}

// ErrKind enumerates the internal-inconsistency kinds Verify can detect.
// None of these are ever returned by Malloc/Free/Realloc; they surface
// only through the log callback passed to Verify, which reports them as
// diagnostics without mutating state or aborting.
type ErrKind int

const (
	ErrBadPrologue ErrKind = iota
	ErrBadEpilogue
	ErrMisaligned
	ErrTagMismatch
	ErrAdjacentFree
	ErrCursorInvalid
)

var errKindText = map[ErrKind]string{
	ErrBadPrologue:   "bad prologue block",
	ErrBadEpilogue:   "bad epilogue header",
	ErrMisaligned:    "payload address not doubleword aligned",
	ErrTagMismatch:   "header and footer disagree",
	ErrAdjacentFree:  "two physically adjacent blocks are both free",
	ErrCursorInvalid: "next-fit cursor does not reference a live block",
}

// ErrILSEQ reports a single inconsistency found by Verify.
type ErrILSEQ struct {
	Kind      ErrKind
	Addr      Addr
	Arg, Arg2 int64
}

func (e *ErrILSEQ) Error() string {
	s := errKindText[e.Kind]
	switch e.Kind {
	case ErrTagMismatch:
		return fmt.Sprintf("%s at %#x: header %#x, footer %#x", s, e.Addr, e.Arg, e.Arg2)
	case ErrAdjacentFree:
		return fmt.Sprintf("%s: blocks at %#x and %#x", s, e.Addr, e.Arg)
	default:
		return fmt.Sprintf("%s at %#x", s, e.Addr)
	}
}

// nolog discards every diagnostic; it is the log function Verify uses
// when it is passed a nil one.
var nolog = func(error) bool { return false }
