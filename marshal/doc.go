// Package marshal maps s-expression trees onto Go structs and back.
//
// A Catalog is built once from a list of record types. Every exported field
// of a record is a grammar field described by its sexp struct tag (see the
// grammar package); the field table is compiled when the catalog is built
// and shared by the decoder and the encoder. Interfaces act as unions: their
// members are registered with Union and tried in order while decoding.
//
// Records can customise themselves through optional methods:
//
//	SexpTag() string  // tag name, defaults to the snake_case type name
//	SetDefaults()     // on the pointer receiver, fills default field values
//	Normalize() error // on the pointer receiver, runs after a successful decode
//	Validate() error  // on the value receiver, runs before encoding
//
// A Catalog is immutable and safe for concurrent use.
package marshal
