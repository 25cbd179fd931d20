package diagnostic

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RCoeurjoly/edea/kicad"
)

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}

func TestDiagnostics_Add(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddInfo(CodeNotCanonical, "would be reformatted", "b.kicad_sch", "")
	d.AddWarning(CodeNotCanonical, "not canonical", "a.kicad_sch", "")
	d.AddError(CodeSyntax, "unexpected )", "b.kicad_sch", "")
	d.AddError(CodeVersion, "too old", "a.kicad_pcb", "")

	assert.True(t, d.HasErrors())
	assert.Len(t, d.Errors, 2)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
	assert.Equal(t, "2 errors, 1 warning", d.Summary())

	d.Sort()
	assert.Equal(t, "a.kicad_pcb", d.Errors[0].File)

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, DiagnosticInfo, all[3].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "a.kicad_pcb: error [version] too old; b.kicad_sch: error [syntax] unexpected )", err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError(CodeIO, "missing", "x", "")
	b.AddWarning(CodeRoundTrip, "drift", "y", "")
	b.AddError(CodeIO, "missing", "y", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, "2 errors, 1 warning", a.Summary())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "location",
			diag: Diagnostic{Severity: DiagnosticError, Code: CodeSyntax, Message: "unexpected )", File: "a.kicad_sch", Line: 3, Column: 7},
			want: "a.kicad_sch:3:7: error [syntax] unexpected )",
		},
		{
			name: "suggestion",
			diag: Diagnostic{Severity: DiagnosticWarning, Message: "unknown tag", File: "a", Suggestions: []string{"wire", "bus"}},
			want: `a: warning unknown tag (did you mean "wire"?)`,
		},
		{
			name: "suggestion already in message",
			diag: Diagnostic{Severity: DiagnosticError, Message: `unknown field "wires" (did you mean "wire"?)`, Suggestions: []string{"wire"}},
			want: `error unknown field "wires" (did you mean "wire"?)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestFromError(t *testing.T) {
	decode := func(text string) error {
		_, err := kicad.DecodeDocument(text)
		require.Error(t, err)

		return fmt.Errorf("decoding: %w", err)
	}

	tests := []struct {
		name       string
		err        error
		code       Code
		line       int
		path       string
		suggestion string
	}{
		{
			name: "syntax",
			err:  decode("(kicad_sch\n  (version 20230121)\n  (uuid"),
			code: CodeSyntax,
			line: 3,
		},
		{
			name: "version",
			err:  decode("(kicad_sch (version 20211123) (generator eeschema))"),
			code: CodeVersion,
		},
		{
			name:       "unknown document",
			err:        decode("(kicad_schh (version 20230121))"),
			code:       CodeUnknownTag,
			suggestion: "kicad_sch",
		},
		{
			name: "untagged document",
			err:  decode("((kicad_sch))"),
			code: CodeSchemaMismatch,
		},
		{
			name:       "unknown field",
			err:        decode("(kicad_sch (version 20230121) (generator eeschema) (wires))"),
			code:       CodeSchemaMismatch,
			path:       "kicad_sch",
			suggestion: "wire",
		},
		{
			name: "io",
			err:  &os.PathError{Op: "open", Path: "x", Err: errors.New("boom")},
			code: CodeIO,
		},
		{
			name: "internal",
			err:  errors.New("boom"),
			code: CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FromError("f.kicad_sch", tt.err)
			assert.Equal(t, DiagnosticError, d.Severity)
			assert.Equal(t, tt.code, d.Code)
			assert.Equal(t, "f.kicad_sch", d.File)
			assert.Equal(t, tt.line, d.Line)
			assert.Equal(t, tt.path, d.Path)

			if tt.suggestion != "" {
				assert.Equal(t, []string{tt.suggestion}, d.Suggestions)
			} else {
				assert.Empty(t, d.Suggestions)
			}
		})
	}
}
