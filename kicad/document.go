package kicad

import (
	"reflect"
	"sort"

	"github.com/RCoeurjoly/edea/kicad/pcb"
	"github.com/RCoeurjoly/edea/kicad/schematic"
)

// Versioned is implemented by records that carry a file format version.
type Versioned interface {
	FormatVersion() int
	// VersionRange returns the inclusive range of accepted versions.
	VersionRange() (lo, hi int)
}

// Document is a top-level file record.
type Document interface {
	Versioned
	SexpTag() string
}

var documents = map[string]func() Document{
	"kicad_sch": func() Document { return new(schematic.Schematic) },
	"kicad_pcb": func() Document { return new(pcb.Board) },
}

// DocumentTags returns the tags of the top-level records, sorted.
func DocumentTags() []string {
	tags := make([]string, 0, len(documents))
	for tag := range documents {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	return tags
}

func isNil(doc Document) bool {
	if doc == nil {
		return true
	}

	rv := reflect.ValueOf(doc)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
