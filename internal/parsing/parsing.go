// Package parsing contains the readers and writers for the supported
// stack file formats and the registry that maps format keys to them.
package parsing

import (
	"fmt"
	"io"

	"github.com/konstantinfoerster/card-stacks-go/internal/stacks"
)

// StackReader parses serialized stack data into a Stack.
type StackReader interface {
	Read(r io.Reader) (*stacks.Stack, error)
}

// StackWriter serializes a Stack.
type StackWriter interface {
	Write(s *stacks.Stack, w io.Writer) error
}

// FormatError reports a malformed input with its position so the user can
// fix the file without reading source code. A parse never produces
// partial results, the first malformed line aborts the whole read.
type FormatError struct {
	Message string
	Unit    string // "line" for text formats, "row" for tabular ones
	Pos     int    // 1-based, 0 when no position applies
}

func (e *FormatError) Error() string {
	if e.Pos > 0 {
		return fmt.Sprintf("%s at %s %d", e.Message, e.Unit, e.Pos)
	}

	return e.Message
}

func newLineErr(line int, format string, args ...any) *FormatError {
	return &FormatError{Message: fmt.Sprintf(format, args...), Unit: "line", Pos: line}
}

func newRowErr(row int, format string, args ...any) *FormatError {
	return &FormatError{Message: fmt.Sprintf(format, args...), Unit: "row", Pos: row}
}

// UnsupportedFormatError is returned when no reader or writer is
// registered for a format key.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q", e.Format)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	_, ok := target.(*UnsupportedFormatError)

	return ok
}
