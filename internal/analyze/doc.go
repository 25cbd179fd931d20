// Package analyze loads record packages and finds what the catalog
// registers.
//
// It uses golang.org/x/tools/go/packages with go/types to build a type
// graph of the named types of each package in declaration order, then
// picks out:
//   - records: exported structs with sexp tagged fields, directly or
//     through an embedded struct
//   - unions: exported interfaces with their implementing types from the
//     same package
package analyze
