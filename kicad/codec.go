package kicad

import (
	"errors"
	"fmt"
	"sync"

	"github.com/RCoeurjoly/edea/internal/match"
	"github.com/RCoeurjoly/edea/kicad/pcb"
	"github.com/RCoeurjoly/edea/marshal"
	"github.com/RCoeurjoly/edea/sexpr"
)

// Codec decodes and encodes documents with one catalog.
type Codec struct {
	catalog *marshal.Catalog
}

func options(extra ...marshal.Option) []marshal.Option {
	opts := append(catalogOptions(), marshal.WithPositionalList(pcb.IsLayerDefinition))

	return append(opts, extra...)
}

// NewCodec builds a codec over the KiCad 7 records. Options such as
// marshal.WithPrecision adjust the catalog.
func NewCodec(opts ...marshal.Option) (*Codec, error) {
	c, err := marshal.NewCatalog(options(opts...)...)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	return &Codec{catalog: c}, nil
}

var defaultCatalog = sync.OnceValues(func() (*marshal.Catalog, error) {
	return marshal.NewCatalog(options()...)
})

// Catalog returns the shared catalog of KiCad 7 records. The registration
// list is static, a failure to build it is a programming error and panics.
func Catalog() *marshal.Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("kicad: building catalog: %v", err))
	}

	return c
}

var defaultCodec = sync.OnceValue(func() *Codec {
	return &Codec{catalog: Catalog()}
})

// DecodeDocument decodes a schematic or board file with the shared catalog.
func DecodeDocument(text string) (Document, error) {
	return defaultCodec().DecodeDocument(text)
}

// EncodeDocument encodes a document with the shared catalog.
func EncodeDocument(doc Document) (string, error) {
	return defaultCodec().EncodeDocument(doc)
}

func (c *Codec) Catalog() *marshal.Catalog {
	return c.catalog
}

// Parse tokenizes text with the nesting limit of the catalog.
func (c *Codec) Parse(text string) (sexpr.List, error) {
	return sexpr.Parse(text, sexpr.WithMaxDepth(c.catalog.MaxDepth()))
}

func (c *Codec) DecodeDocument(text string) (Document, error) {
	expr, err := c.Parse(text)
	if err != nil {
		return nil, err
	}

	return c.DecodeTree(expr)
}

// DecodeTree decodes a parsed document. The version is checked before the
// structure, so files from other KiCad releases report a *VersionError
// rather than the first field they disagree on.
func (c *Codec) DecodeTree(expr sexpr.List) (Document, error) {
	tag, ok := expr.Tag()
	if !ok {
		return nil, &marshal.MismatchError{Record: "document", Msg: "expected a tagged list such as (kicad_sch ...)"}
	}

	proto, ok := documents[tag]
	if !ok {
		e := &marshal.UnknownTagError{Tag: tag}
		e.Suggestion, _ = match.Suggest(tag, DocumentTags())

		return nil, e
	}

	doc := proto()

	lo, hi := doc.VersionRange()
	if err := checkRawVersion(tag, expr, lo, hi); err != nil {
		return nil, err
	}

	if err := c.catalog.Unmarshal(expr, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (c *Codec) EncodeTree(doc Document) (sexpr.List, error) {
	if isNil(doc) {
		return nil, errors.New("nil document")
	}

	if err := checkVersion(doc); err != nil {
		return nil, err
	}

	return c.catalog.EncodeExpr(doc)
}

func (c *Codec) EncodeDocument(doc Document) (string, error) {
	expr, err := c.EncodeTree(doc)
	if err != nil {
		return "", err
	}

	return sexpr.Render(expr), nil
}
