// Package grammar describes how a record field is spelled in an
// s-expression. Fields carry a struct tag of the form
//
//	sexp:"name,option,option"
//
// where name is the keyword (empty means the snake_case Go field name) and
// each option is one of the TagEnum spellings below. The tag "-" skips the
// field.
package grammar

import (
	"fmt"
	"strings"
)

// Key is the struct tag key read by Parse.
const Key = "sexp"

type TagEnum int

const (
	TagPositional       TagEnum = 1 << iota // bare value in the leading run, no keyword wrapper
	TagKeywordBool                          // true iff the bare keyword appears among the arguments: hide
	TagKeywordBoolEmpty                     // true iff the empty group appears: (fields_autoplaced)
	TagYesNo                                // boolean spelled yes or no: (in_bom yes)
	TagOmitDefault                          // left out when equal to the record default
	TagQuote                                // strings are always quoted
	TagRequired                             // keyword field must be present

	TagAll  TagEnum = (1 << iota) - 1 // all tags combined
	TagNone TagEnum = 0               // no tags selected

	// TagBoolean groups the tags that pick a boolean spelling.
	TagBoolean = TagKeywordBool | TagKeywordBoolEmpty | TagYesNo
)

var tagNames = []struct {
	tag  TagEnum
	name string
}{
	{TagPositional, "positional"},
	{TagKeywordBool, "kwbool"},
	{TagKeywordBoolEmpty, "kwbool_empty"},
	{TagYesNo, "yesno"},
	{TagOmitDefault, "omitdefault"},
	{TagQuote, "quote"},
	{TagRequired, "required"},
}

func (t TagEnum) Has(tag TagEnum) bool {
	return t&tag == tag
}

func (t TagEnum) String() string {
	if t == TagNone {
		return "none"
	}

	var names []string
	for _, tn := range tagNames {
		if t&tn.tag != 0 {
			names = append(names, tn.name)
		}
	}

	if rest := t &^ TagAll; rest != 0 {
		names = append(names, fmt.Sprintf("TagEnum(%d)", int(rest)))
	}

	return strings.Join(names, ",")
}

// Spec is a parsed field tag.
type Spec struct {
	Name string
	Tags TagEnum
	Skip bool
}

// Parse reads a struct tag value such as "in_bom,yesno". The result is
// checked with Validate.
func Parse(tag string) (Spec, error) {
	if tag == "-" {
		return Spec{Skip: true}, nil
	}

	parts := strings.Split(tag, ",")
	spec := Spec{Name: strings.TrimSpace(parts[0])}

	for _, opt := range parts[1:] {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}

		t, ok := lookup(opt)
		if !ok {
			return Spec{}, fmt.Errorf("unknown sexp tag option %q in %q", opt, tag)
		}

		spec.Tags |= t
	}

	if err := Validate(spec.Tags); err != nil {
		return Spec{}, fmt.Errorf("sexp tag %q: %w", tag, err)
	}

	return spec, nil
}

func lookup(name string) (TagEnum, bool) {
	for _, tn := range tagNames {
		if tn.name == name {
			return tn.tag, true
		}
	}

	return TagNone, false
}

// Validate rejects combinations that cannot describe a single field. Checks
// that depend on the field type are left to the caller.
func Validate(t TagEnum) error {
	if b := t & TagBoolean; b&(b-1) != 0 {
		return fmt.Errorf("at most one boolean spelling allowed, got %s", b)
	}

	if t.Has(TagPositional) && t&(TagBoolean|TagRequired) != 0 {
		return fmt.Errorf("positional cannot be combined with %s", t&(TagBoolean|TagRequired))
	}

	if t.Has(TagRequired) && t&(TagOmitDefault|TagBoolean) != 0 {
		return fmt.Errorf("required cannot be combined with %s", t&(TagOmitDefault|TagBoolean))
	}

	return nil
}
