// Package kicad reads and writes KiCad 7 schematic and board files.
//
// DecodeDocument parses a whole file and returns a *schematic.Schematic or
// a *pcb.Board; EncodeDocument writes one back in KiCad's layout. The file
// format version is checked on the raw tree before anything else is
// decoded, older and newer files fail with a *VersionError.
//
// The record catalog is generated from the common, schematic and pcb
// packages by cmd/catalog-gen, run go generate after adding records.
package kicad

//go:generate go run ../cmd/catalog-gen -o catalog_gen.go ./common ./schematic ./pcb
