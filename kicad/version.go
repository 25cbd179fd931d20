package kicad

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/RCoeurjoly/edea/sexpr"
	"github.com/RCoeurjoly/edea/utils"
)

var ErrUnsupportedVersion = errors.New("unsupported file format version")

// VersionError reports a file written by a KiCad release the catalog does
// not describe.
type VersionError struct {
	Tag     string
	Version string // as written, empty when the file has none
	Lo, Hi  int
}

func (e *VersionError) Error() string {
	want := strconv.Itoa(e.Lo)
	if e.Hi != e.Lo {
		want = fmt.Sprintf("%d to %d", e.Lo, e.Hi)
	}

	got := e.Version
	if got == "" {
		got = "no version"
	}

	return fmt.Sprintf("%s: only the KiCad 7 file format %s is supported, got %s; open and re-save the file with KiCad 7",
		e.Tag, want, got)
}

func (e *VersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// rawVersion finds (version N) among the arguments of a document.
func rawVersion(args sexpr.List) (string, bool) {
	for _, e := range args {
		l, ok := e.(sexpr.List)
		if !ok {
			continue
		}

		if tag, _ := l.Tag(); tag != "version" {
			continue
		}

		if v := l.Args(); len(v) == 1 {
			if a, ok := v[0].(sexpr.Atom); ok {
				return a.Text, true
			}
		}

		return sexpr.Render(l), false
	}

	return "", false
}

func checkRawVersion(tag string, expr sexpr.List, lo, hi int) error {
	text, ok := rawVersion(expr.Args())
	if ok {
		if n, err := strconv.Atoi(text); err == nil && utils.Within(n, lo, hi) {
			return nil
		}
	}

	return &VersionError{Tag: tag, Version: text, Lo: lo, Hi: hi}
}

func checkVersion(doc Document) error {
	lo, hi := doc.VersionRange()
	if v := doc.FormatVersion(); !utils.Within(v, lo, hi) {
		return &VersionError{Tag: doc.SexpTag(), Version: strconv.Itoa(v), Lo: lo, Hi: hi}
	}

	return nil
}
