package marshal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSchemaMismatch = errors.New("schema mismatch")
	ErrUnionExhausted = errors.New("no union member matched")
	ErrUnknownTag     = errors.New("unknown tag")
	ErrMaxDepth       = errors.New("maximum nesting depth exceeded")
)

// Path locates a value in a tree by the keywords leading to it, outermost
// first. Repeated groups carry their index: symbol[2].
type Path []string

func (p Path) String() string {
	return strings.Join(p, "/")
}

// MismatchError reports a tree that does not fit the record being decoded,
// or a value that cannot be encoded.
type MismatchError struct {
	Path       Path   // where the record sits, relative to the decoded root
	Record     string // tag of the record
	GoType     string // Go type of the record when the tag does not name it
	Field      string // keyword of the offending field, if any
	Msg        string
	Suggestion string // closest known keyword for unknown fields
	Err        error
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	if len(e.Path) > 0 {
		b.WriteString(e.Path.String())
		b.WriteString(": ")
	}

	b.WriteString(e.Record)
	if e.GoType != "" {
		fmt.Fprintf(&b, " (%s)", e.GoType)
	}

	if e.Field != "" {
		fmt.Fprintf(&b, " field %s", e.Field)
	}

	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

func (e *MismatchError) Unwrap() error {
	return e.Err
}

// UnionError reports that no member of a union accepted the tree. Err is the
// failure of the first member tried.
type UnionError struct {
	Path    Path
	Union   string
	Members []string
	Err     error
}

func (e *UnionError) Error() string {
	var b strings.Builder
	if len(e.Path) > 0 {
		b.WriteString(e.Path.String())
		b.WriteString(": ")
	}

	fmt.Fprintf(&b, "no member of %s matched (tried %s)", e.Union, strings.Join(e.Members, ", "))
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *UnionError) Is(target error) bool {
	return target == ErrUnionExhausted
}

func (e *UnionError) Unwrap() error {
	return e.Err
}

// UnknownTagError reports an expression whose tag names no record.
type UnknownTagError struct {
	Tag        string
	Suggestion string
}

func (e *UnknownTagError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown tag %q (did you mean %q?)", e.Tag, e.Suggestion)
	}

	return fmt.Sprintf("unknown tag %q", e.Tag)
}

func (e *UnknownTagError) Is(target error) bool {
	return target == ErrUnknownTag
}

// withPath prefixes the location of a typed error with seg. Other errors
// are returned unchanged.
func withPath(err error, seg string) error {
	switch e := err.(type) {
	case *MismatchError:
		e.Path = append(Path{seg}, e.Path...)
	case *UnionError:
		e.Path = append(Path{seg}, e.Path...)
	}

	return err
}

func indexed(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}
