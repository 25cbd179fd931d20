package diagnostic

import (
	"errors"
	"io/fs"

	"github.com/RCoeurjoly/edea/kicad"
	"github.com/RCoeurjoly/edea/marshal"
	"github.com/RCoeurjoly/edea/sexpr"
)

// Code identifies the kind of a finding.
type Code string

const (
	CodeIO             Code = "io"
	CodeSyntax         Code = "syntax"
	CodeSchemaMismatch Code = "schema-mismatch"
	CodeUnion          Code = "union"
	CodeUnknownTag     Code = "unknown-tag"
	CodeVersion        Code = "version"
	CodeRoundTrip      Code = "roundtrip"
	CodeNotCanonical   Code = "not-canonical"
	CodeInternal       Code = "internal"
)

// FromError turns an error of the codec or the file system into an error
// diagnostic for file.
func FromError(file string, err error) Diagnostic {
	d := Diagnostic{
		Severity: DiagnosticError,
		Code:     classify(err),
		Message:  err.Error(),
		File:     file,
	}

	var syn *sexpr.SyntaxError
	if errors.As(err, &syn) {
		d.Line, d.Column = syn.Line, syn.Column
		d.Message = syn.Msg
	}

	var mm *marshal.MismatchError
	if errors.As(err, &mm) {
		d.Path = mm.Path.String()
		if mm.Suggestion != "" {
			d.Suggestions = []string{mm.Suggestion}
		}
	}

	var ue *marshal.UnionError
	if d.Path == "" && errors.As(err, &ue) {
		d.Path = ue.Path.String()
	}

	var ut *marshal.UnknownTagError
	if errors.As(err, &ut) && ut.Suggestion != "" {
		d.Suggestions = []string{ut.Suggestion}
	}

	return d
}

// classify picks the code of the outermost known error kind. A version
// error wins over the schema errors it may hide.
func classify(err error) Code {
	switch {
	case errors.Is(err, kicad.ErrUnsupportedVersion):
		return CodeVersion
	case errors.Is(err, sexpr.ErrSyntax):
		return CodeSyntax
	case errors.Is(err, marshal.ErrUnknownTag):
		return CodeUnknownTag
	case errors.Is(err, marshal.ErrUnionExhausted):
		return CodeUnion
	case errors.Is(err, marshal.ErrSchemaMismatch):
		return CodeSchemaMismatch
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return CodeIO
	default:
		var pe *fs.PathError
		if errors.As(err, &pe) {
			return CodeIO
		}

		return CodeInternal
	}
}
